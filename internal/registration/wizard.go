// Package registration implements the three-step registration flow:
// account, profile, review. Steps are linear with no skipping forward;
// backward navigation never re-validates and never loses entered values.
package registration

import (
	"context"

	"github.com/surhub/startup-weekend/internal/model"
	"github.com/surhub/startup-weekend/internal/service"
)

type Step int

const (
	StepAccount Step = iota + 1
	StepProfile
	StepReview
)

// Registrar is the submit seam; the session holder satisfies it.
type Registrar interface {
	Register(ctx context.Context, input service.RegisterInput) (*model.Identity, *service.Error)
}

type Wizard struct {
	registrar Registrar

	step  Step
	draft Draft
	errs  FieldErrors
}

func NewWizard(registrar Registrar) *Wizard {
	return &Wizard{
		registrar: registrar,
		step:      StepAccount,
		errs:      FieldErrors{},
	}
}

func (w *Wizard) Step() Step {
	return w.step
}

// Draft returns the mutable draft shared by all steps.
func (w *Wizard) Draft() *Draft {
	return &w.draft
}

// Errors returns the field errors from the last blocked transition.
func (w *Wizard) Errors() FieldErrors {
	return w.errs
}

// Next validates the current step and advances when clean. The returned
// errors are empty on a permitted transition. Calling Next on the review
// step is a no-op; submission goes through Submit.
func (w *Wizard) Next() FieldErrors {
	switch w.step {
	case StepAccount:
		w.errs = ValidateAccount(&w.draft)
		if len(w.errs) == 0 {
			w.step = StepProfile
		}
	case StepProfile:
		w.errs = ValidateProfile(&w.draft)
		if len(w.errs) == 0 {
			w.step = StepReview
		}
	case StepReview:
		w.errs = FieldErrors{}
	}
	return w.errs
}

// Back moves to the previous step without re-validation; field values are
// kept in the draft.
func (w *Wizard) Back() {
	if w.step > StepAccount {
		w.step--
	}
	w.errs = FieldErrors{}
}

// Submit registers the drafted account. Only permitted from the review step.
// On failure the wizard stays on review and the draft is preserved so the
// user can resubmit.
func (w *Wizard) Submit(ctx context.Context) (*model.Identity, *service.Error) {
	if w.step != StepReview {
		return nil, service.NewError(service.ErrorCodeInvalidBody, "registration is not ready to submit")
	}

	identity, svcErr := w.registrar.Register(ctx, service.RegisterInput{
		Name:  w.draft.Name,
		Email: w.draft.Email,
	})
	if svcErr != nil {
		return nil, svcErr
	}

	return identity, nil
}
