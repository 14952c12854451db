package registration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/surhub/startup-weekend/internal/model"
	"github.com/surhub/startup-weekend/internal/service"
)

type mockRegistrar struct {
	mock.Mock
}

func (m *mockRegistrar) Register(ctx context.Context, input service.RegisterInput) (*model.Identity, *service.Error) {
	args := m.Called(ctx, input)
	var identity *model.Identity
	if args.Get(0) != nil {
		identity = args.Get(0).(*model.Identity)
	}
	var svcErr *service.Error
	if args.Get(1) != nil {
		svcErr = args.Get(1).(*service.Error)
	}
	return identity, svcErr
}

func fillValidAccount(d *Draft) {
	d.Name = "New Founder"
	d.Email = "founder@example.com"
	d.Password = "Sup3rSecret"
	d.ConfirmPassword = "Sup3rSecret"
}

func fillValidProfile(d *Draft) {
	d.Role = "Developer"
	d.Skills = []string{"Python"}
}

func TestWizard_AccountStepGating(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(*Draft)
		expectedField string
	}{
		{
			name:          "short name",
			mutate:        func(d *Draft) { d.Name = "A" },
			expectedField: "name",
		},
		{
			name:          "bad email",
			mutate:        func(d *Draft) { d.Email = "not-an-email" },
			expectedField: "email",
		},
		{
			name:          "short password",
			mutate:        func(d *Draft) { d.Password = "Ab1"; d.ConfirmPassword = "Ab1" },
			expectedField: "password",
		},
		{
			name:          "no uppercase",
			mutate:        func(d *Draft) { d.Password = "sup3rsecret"; d.ConfirmPassword = "sup3rsecret" },
			expectedField: "password",
		},
		{
			name:          "no lowercase",
			mutate:        func(d *Draft) { d.Password = "SUP3RSECRET"; d.ConfirmPassword = "SUP3RSECRET" },
			expectedField: "password",
		},
		{
			name:          "no digit",
			mutate:        func(d *Draft) { d.Password = "SuperSecret"; d.ConfirmPassword = "SuperSecret" },
			expectedField: "password",
		},
		{
			name:          "mismatched confirmation",
			mutate:        func(d *Draft) { d.ConfirmPassword = "Different1" },
			expectedField: "confirmPassword",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWizard(nil)
			fillValidAccount(w.Draft())
			tt.mutate(w.Draft())

			errs := w.Next()
			assert.Contains(t, errs, tt.expectedField)
			assert.Equal(t, StepAccount, w.Step())
		})
	}
}

func TestWizard_MismatchThenCorrectAdvances(t *testing.T) {
	w := NewWizard(nil)
	fillValidAccount(w.Draft())
	w.Draft().ConfirmPassword = "Different1"

	errs := w.Next()
	require.Contains(t, errs, "confirmPassword")
	require.Equal(t, StepAccount, w.Step())

	// Correcting the mismatch and resubmitting advances.
	w.Draft().ConfirmPassword = w.Draft().Password
	errs = w.Next()
	assert.Empty(t, errs)
	assert.Equal(t, StepProfile, w.Step())
}

func TestWizard_ProfileStepGating(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(*Draft)
		expectedField string
	}{
		{
			name:          "no role selected",
			mutate:        func(d *Draft) { d.Role = "" },
			expectedField: "role",
		},
		{
			name:          "role outside catalog",
			mutate:        func(d *Draft) { d.Role = "Wizard" },
			expectedField: "role",
		},
		{
			name:          "no skills selected",
			mutate:        func(d *Draft) { d.Skills = nil },
			expectedField: "skills",
		},
		{
			name:          "skills outside catalog",
			mutate:        func(d *Draft) { d.Skills = []string{"Underwater Basket Weaving"} },
			expectedField: "skills",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWizard(nil)
			fillValidAccount(w.Draft())
			require.Empty(t, w.Next())

			fillValidProfile(w.Draft())
			tt.mutate(w.Draft())

			errs := w.Next()
			assert.Contains(t, errs, tt.expectedField)
			assert.Equal(t, StepProfile, w.Step())
		})
	}
}

func TestWizard_BackPreservesDraft(t *testing.T) {
	w := NewWizard(nil)
	fillValidAccount(w.Draft())
	require.Empty(t, w.Next())
	fillValidProfile(w.Draft())
	require.Empty(t, w.Next())
	require.Equal(t, StepReview, w.Step())

	w.Back()
	assert.Equal(t, StepProfile, w.Step())
	w.Back()
	assert.Equal(t, StepAccount, w.Step())
	w.Back()
	assert.Equal(t, StepAccount, w.Step())

	// Nothing entered was lost.
	assert.Equal(t, "New Founder", w.Draft().Name)
	assert.Equal(t, "Developer", w.Draft().Role)
	assert.Equal(t, []string{"Python"}, w.Draft().Skills)
}

func TestWizard_NoSkippingForward(t *testing.T) {
	registrar := &mockRegistrar{}
	w := NewWizard(registrar)

	_, svcErr := w.Submit(context.Background())
	require.NotNil(t, svcErr)
	assert.Equal(t, service.ErrorCodeInvalidBody, svcErr.Code)
	registrar.AssertNotCalled(t, "Register")
}

func TestWizard_Submit(t *testing.T) {
	registrar := &mockRegistrar{}
	registrar.On("Register", mock.Anything, service.RegisterInput{
		Name:  "New Founder",
		Email: "founder@example.com",
	}).Return(&model.Identity{ID: "abc", Role: model.RoleUser}, nil).Once()

	w := NewWizard(registrar)
	fillValidAccount(w.Draft())
	require.Empty(t, w.Next())
	fillValidProfile(w.Draft())
	require.Empty(t, w.Next())

	identity, svcErr := w.Submit(context.Background())
	require.Nil(t, svcErr)
	assert.Equal(t, "abc", identity.ID)
	registrar.AssertExpectations(t)
}

func TestWizard_SubmitFailureKeepsDraft(t *testing.T) {
	registrar := &mockRegistrar{}
	registrar.On("Register", mock.Anything, mock.Anything).
		Return(nil, service.NewError(service.ErrorCodeUnspecified, "registration_failed")).Once()

	w := NewWizard(registrar)
	fillValidAccount(w.Draft())
	require.Empty(t, w.Next())
	fillValidProfile(w.Draft())
	require.Empty(t, w.Next())

	identity, svcErr := w.Submit(context.Background())
	require.NotNil(t, svcErr)
	assert.Nil(t, identity)

	// Still on review with the draft intact, ready to resubmit.
	assert.Equal(t, StepReview, w.Step())
	assert.Equal(t, "founder@example.com", w.Draft().Email)
}
