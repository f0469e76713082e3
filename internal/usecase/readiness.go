package usecase

import "github.com/xavierca1/lead-exchange/internal/entity"

// Quiz answer values shared by both segments.
const (
	CreditExcellent = "excellent"
	CreditGood      = "good"
	CreditFair      = "fair"
	CreditPoor      = "poor"

	DepositGt20   = "gt20"
	Deposit10to20 = "10to20"
	DepositLt10   = "lt10"
)

// Refinance-only answers.
const (
	IncomeStableYes    = "yes"
	IncomeStableMostly = "mostly"
	IncomeStableNo     = "no"
)

// Self-employed-only answers.
const (
	BusinessYears3Plus = "3plus"
	BusinessYears2to3  = "2to3"
	BusinessYears1to2  = "1to2"
	BusinessYearsLt1   = "lt1"
)

type RefinanceAnswers struct {
	CreditScoreBand string
	DepositBand     string
	IncomeStable    string
}

type SelfEmployedAnswers struct {
	CreditScoreBand       string
	DepositBand           string
	BusinessYears         string
	HasTwoYearsFinancials string
}

func scoreCreditBand(value string) int {
	switch value {
	case CreditExcellent:
		return 3
	case CreditGood:
		return 2
	case CreditFair:
		return 1
	}
	return 0
}

func scoreDepositBand(value string) int {
	switch value {
	case DepositGt20:
		return 3
	case Deposit10to20:
		return 2
	}
	return 0
}

func bandScore(points int) string {
	if points >= 7 {
		return entity.ScoreGreen
	}
	if points >= 4 {
		return entity.ScoreAmber
	}
	return entity.ScoreRed
}

func CalculateRefinanceReadiness(a RefinanceAnswers) string {
	points := scoreCreditBand(a.CreditScoreBand) + scoreDepositBand(a.DepositBand)

	switch a.IncomeStable {
	case IncomeStableYes:
		points += 2
	case IncomeStableMostly:
		points++
	}

	return bandScore(points)
}

func CalculateSelfEmployedReadiness(a SelfEmployedAnswers) string {
	points := scoreCreditBand(a.CreditScoreBand) + scoreDepositBand(a.DepositBand)

	switch a.BusinessYears {
	case BusinessYears3Plus:
		points += 2
	case BusinessYears2to3:
		points++
	}

	if a.HasTwoYearsFinancials == "yes" {
		points += 2
	}

	return bandScore(points)
}
