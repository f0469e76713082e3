package mail

type LeadUnlockedEmailData struct {
	BrokerName string
	LeadName   string
	LeadEmail  string
	LeadPhone  string
	Segment    string
	State      string
	PriceLabel string
}

type QuizConfirmationEmailData struct {
	FirstName      string
	Segment        string
	ReadinessScore string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}
