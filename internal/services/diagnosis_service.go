package services

import (
	"context"
	"errors"
	"math"

	"github.com/csestrada2005/puebla-barf-connect-sub001/internal/model"
)

// ProductFinder picks a pack size for a computed daily ration.
type ProductFinder interface {
	FindSmallestCovering(ctx context.Context, dailyGrams, minDays int) (*model.Product, error)
}

// DiagnosisStore persists diagnosis sessions.
type DiagnosisStore interface {
	CreateSession(ctx context.Context, customerID *int64, profile model.PetProfile, dailyGrams int, productID *int64) (int64, error)
	GetSession(ctx context.Context, sessionID int64) (*model.DiagnosisSession, error)
}

type DiagnosisService struct {
	Store    DiagnosisStore
	Products ProductFinder
}

func NewDiagnosisService(store DiagnosisStore, products ProductFinder) *DiagnosisService {
	return &DiagnosisService{Store: store, Products: products}
}

// minSupplyDays is the shortest supply a recommended pack should cover.
const minSupplyDays = 7

// RationGrams computes the daily BARF ration as a percentage of body
// weight: growing animals eat proportionally more, and the activity level
// nudges the ration by 10% either way. Rounded to the nearest 5 g.
func RationGrams(p model.PetProfile) int {
	var pct float64
	switch p.Species {
	case "dog":
		if p.AgeMonths < 12 {
			pct = 0.06
		} else {
			pct = 0.025
		}
	case "cat":
		if p.AgeMonths < 12 {
			pct = 0.05
		} else {
			pct = 0.03
		}
	}

	switch p.Activity {
	case "low":
		pct *= 0.9
	case "high":
		pct *= 1.1
	}

	grams := p.WeightKg * 1000 * pct
	ration := int(math.Round(grams/5) * 5)
	if ration < 5 {
		// sub-111 g pets would otherwise round down to a zero ration
		ration = 5
	}
	return ration
}

func validateProfile(p model.PetProfile) error {
	if p.Species != "dog" && p.Species != "cat" {
		return errors.New("species must be dog or cat")
	}
	if p.WeightKg <= 0 || p.WeightKg > 120 {
		return errors.New("weight out of range")
	}
	if p.AgeMonths <= 0 {
		return errors.New("age must be positive")
	}
	if p.Activity != "low" && p.Activity != "normal" && p.Activity != "high" {
		return errors.New("activity must be low, normal or high")
	}
	return nil
}

// Evaluate runs the diagnosis flow: validate the profile, compute the daily
// ration, pick a pack, and persist the session.
func (s *DiagnosisService) Evaluate(
	ctx context.Context,
	customerID *int64,
	profile model.PetProfile,
) (int64, *model.FeedingPlan, error) {
	if err := validateProfile(profile); err != nil {
		return 0, nil, err
	}

	dailyGrams := RationGrams(profile)

	plan := &model.FeedingPlan{DailyGrams: dailyGrams}

	product, err := s.Products.FindSmallestCovering(ctx, dailyGrams, minSupplyDays)
	if err != nil {
		return 0, nil, err
	}

	var productID *int64
	if product != nil {
		plan.Product = product
		if dailyGrams > 0 {
			plan.DaysPerPack = product.SizeGrams / dailyGrams
		}
		if plan.DaysPerPack > 0 {
			plan.SuggestedPacks = (14 + plan.DaysPerPack - 1) / plan.DaysPerPack
		}
		productID = &product.ProductID
	}

	sessionID, err := s.Store.CreateSession(ctx, customerID, profile, dailyGrams, productID)
	if err != nil {
		return 0, nil, err
	}

	return sessionID, plan, nil
}

func (s *DiagnosisService) GetSession(ctx context.Context, sessionID int64) (*model.DiagnosisSession, error) {
	return s.Store.GetSession(ctx, sessionID)
}
