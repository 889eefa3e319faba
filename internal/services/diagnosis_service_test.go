package services

import (
	"context"
	"testing"

	"github.com/csestrada2005/puebla-barf-connect-sub001/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRationGrams(t *testing.T) {
	cases := []struct {
		name    string
		profile model.PetProfile
		want    int
	}{
		{"adult dog", model.PetProfile{Species: "dog", WeightKg: 20, AgeMonths: 36, Activity: "normal"}, 500},
		{"puppy", model.PetProfile{Species: "dog", WeightKg: 5, AgeMonths: 4, Activity: "normal"}, 300},
		{"adult cat", model.PetProfile{Species: "cat", WeightKg: 4, AgeMonths: 24, Activity: "normal"}, 120},
		{"lazy adult dog", model.PetProfile{Species: "dog", WeightKg: 20, AgeMonths: 36, Activity: "low"}, 450},
		{"active adult dog", model.PetProfile{Species: "dog", WeightKg: 20, AgeMonths: 36, Activity: "high"}, 550},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, RationGrams(tc.profile))
		})
	}
}

func TestRationGramsNeverZero(t *testing.T) {
	// a 50 g "dog" passes profile validation but its ration would round
	// down to zero without the floor
	tiny := model.PetProfile{Species: "dog", WeightKg: 0.05, AgeMonths: 24, Activity: "low"}
	assert.Equal(t, 5, RationGrams(tiny))
}

func TestEvaluateTinyWeightProfile(t *testing.T) {
	store := &stubDiagnosisStore{}
	finder := &stubProductFinder{product: &model.Product{
		ProductID: 3, Name: "Pollo 500g", SizeGrams: 500, Price: 90,
	}}
	svc := NewDiagnosisService(store, finder)

	profile := model.PetProfile{Species: "dog", WeightKg: 0.05, AgeMonths: 24, Activity: "low"}
	_, plan, err := svc.Evaluate(context.Background(), nil, profile)
	require.NoError(t, err)

	assert.Equal(t, 5, plan.DailyGrams)
	assert.Equal(t, 100, plan.DaysPerPack)
	assert.Equal(t, 1, plan.SuggestedPacks)
}

type stubDiagnosisStore struct {
	lastDailyGrams int
	lastProductID  *int64
	sessions       map[int64]*model.DiagnosisSession
}

func (s *stubDiagnosisStore) CreateSession(_ context.Context, _ *int64, _ model.PetProfile, dailyGrams int, productID *int64) (int64, error) {
	s.lastDailyGrams = dailyGrams
	s.lastProductID = productID
	return 42, nil
}

func (s *stubDiagnosisStore) GetSession(_ context.Context, id int64) (*model.DiagnosisSession, error) {
	return s.sessions[id], nil
}

type stubProductFinder struct {
	product *model.Product
}

func (s *stubProductFinder) FindSmallestCovering(_ context.Context, _, _ int) (*model.Product, error) {
	return s.product, nil
}

func TestEvaluateBuildsPlanAndPersists(t *testing.T) {
	store := &stubDiagnosisStore{}
	finder := &stubProductFinder{product: &model.Product{
		ProductID: 7, Name: "Res 5kg", SizeGrams: 5000, Price: 650,
	}}
	svc := NewDiagnosisService(store, finder)

	profile := model.PetProfile{Species: "dog", WeightKg: 20, AgeMonths: 36, Activity: "normal"}
	sessionID, plan, err := svc.Evaluate(context.Background(), nil, profile)
	require.NoError(t, err)

	assert.Equal(t, int64(42), sessionID)
	assert.Equal(t, 500, plan.DailyGrams)
	require.NotNil(t, plan.Product)
	assert.Equal(t, 10, plan.DaysPerPack)   // 5000g / 500g per day
	assert.Equal(t, 2, plan.SuggestedPacks) // 14-day cycle
	assert.Equal(t, 500, store.lastDailyGrams)
	require.NotNil(t, store.lastProductID)
	assert.Equal(t, int64(7), *store.lastProductID)
}

func TestEvaluateWithoutMatchingProduct(t *testing.T) {
	store := &stubDiagnosisStore{}
	svc := NewDiagnosisService(store, &stubProductFinder{})

	profile := model.PetProfile{Species: "cat", WeightKg: 4, AgeMonths: 24, Activity: "normal"}
	_, plan, err := svc.Evaluate(context.Background(), nil, profile)
	require.NoError(t, err)

	assert.Nil(t, plan.Product)
	assert.Nil(t, store.lastProductID)
}

func TestEvaluateRejectsBadProfiles(t *testing.T) {
	svc := NewDiagnosisService(&stubDiagnosisStore{}, &stubProductFinder{})

	bad := []model.PetProfile{
		{Species: "bird", WeightKg: 1, AgeMonths: 12, Activity: "normal"},
		{Species: "dog", WeightKg: 0, AgeMonths: 12, Activity: "normal"},
		{Species: "dog", WeightKg: 500, AgeMonths: 12, Activity: "normal"},
		{Species: "dog", WeightKg: 10, AgeMonths: 0, Activity: "normal"},
		{Species: "dog", WeightKg: 10, AgeMonths: 12, Activity: "extreme"},
	}
	for _, p := range bad {
		_, _, err := svc.Evaluate(context.Background(), nil, p)
		assert.Error(t, err)
	}
}
