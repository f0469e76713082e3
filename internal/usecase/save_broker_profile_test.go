package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/lead-exchange/internal/entity"
)

func profileInput() SaveBrokerProfileInput {
	return SaveBrokerProfileInput{
		AuthUserID:  "auth-1",
		FullName:    "Alex Broker",
		Email:       "alex@brokerage.example",
		CompanyName: "Broker & Co",
		Phone:       "0400000000",
		States:      []string{"VIC", "NSW"},
		Specialties: []string{"refinance"},
	}
}

func TestSaveBrokerProfile(t *testing.T) {
	ctx := context.Background()
	brokerRepo := new(MockBrokerRepository)

	brokerRepo.On("Upsert", ctx, mock.MatchedBy(func(b *entity.Broker) bool {
		return b.AuthUserID == "auth-1" && len(b.States) == 2 && b.ID != ""
	})).Return(nil)

	uc := NewSaveBrokerProfileUseCase(brokerRepo)
	broker, err := uc.Execute(ctx, profileInput())

	assert.NoError(t, err)
	assert.Equal(t, "Alex Broker", broker.FullName)
}

func TestSaveBrokerProfileValidation(t *testing.T) {
	uc := NewSaveBrokerProfileUseCase(new(MockBrokerRepository))

	tests := []struct {
		name   string
		mutate func(*SaveBrokerProfileInput)
	}{
		{"missing name", func(in *SaveBrokerProfileInput) { in.FullName = "" }},
		{"missing phone", func(in *SaveBrokerProfileInput) { in.Phone = "" }},
		{"empty coverage", func(in *SaveBrokerProfileInput) { in.States = nil }},
		{"empty specialties", func(in *SaveBrokerProfileInput) { in.Specialties = nil }},
		{"unknown state", func(in *SaveBrokerProfileInput) { in.States = []string{"QLD"} }},
		{"unknown specialty", func(in *SaveBrokerProfileInput) { in.Specialties = []string{"commercial"} }},
		{"bad email", func(in *SaveBrokerProfileInput) { in.Email = "nope" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := profileInput()
			tt.mutate(&input)

			_, err := uc.Execute(context.Background(), input)
			assert.Equal(t, CodeValidation, ErrorCode(err))
		})
	}
}
