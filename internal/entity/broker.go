package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Broker struct {
	ID          string    `json:"id"`
	AuthUserID  string    `json:"auth_user_id"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	CompanyName string    `json:"company_name,omitempty"`
	Phone       string    `json:"phone"`
	States      []string  `json:"state_coverage"`
	Specialties []string  `json:"specialties"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewBroker(authUserID, fullName, email, companyName, phone string, states, specialties []string) (*Broker, error) {
	broker := &Broker{
		ID:          uuid.New().String(),
		AuthUserID:  authUserID,
		FullName:    fullName,
		Email:       email,
		CompanyName: companyName,
		Phone:       phone,
		States:      states,
		Specialties: specialties,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := broker.Validate(); err != nil {
		return nil, err
	}

	return broker, nil
}

func (b *Broker) Validate() error {
	if b.AuthUserID == "" {
		return errors.New("auth user id is required")
	}
	if b.FullName == "" {
		return errors.New("full name is required")
	}
	if b.Email == "" {
		return errors.New("email is required")
	}
	if b.Phone == "" {
		return errors.New("phone is required")
	}
	if len(b.States) == 0 {
		return errors.New("at least one coverage state is required")
	}
	if len(b.Specialties) == 0 {
		return errors.New("at least one specialty is required")
	}
	for _, s := range b.States {
		if !IsLeadState(s) {
			return errors.New("invalid coverage state: " + s)
		}
	}
	for _, s := range b.Specialties {
		if !IsLeadSegment(s) {
			return errors.New("invalid specialty: " + s)
		}
	}
	return nil
}
