package queries

import (
	"errors"
	"strings"

	"freight/internal/core/domain/model/parcel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var (
	ErrCheckTransitionQueryIsNotConstructed = errors.New(
		"CheckTransitionQuery must be created via NewCheckTransitionQuery constructor",
	)
)

// CheckTransitionQuery asks whether a parcel may move from one status to
// another. Status codes outside the vocabulary are not an error: they have no
// legal transitions and the answer is simply false.
type CheckTransitionQuery struct {
	from  string
	to    string
	guard guard.ConstructorGuard
}

func NewCheckTransitionQuery(from, to string) (CheckTransitionQuery, error) {
	from = strings.TrimSpace(from)
	to = strings.TrimSpace(to)

	var fromErr, toErr error
	if from == "" {
		fromErr = errs.NewValueIsRequiredError("from")
	}
	if to == "" {
		toErr = errs.NewValueIsRequiredError("to")
	}
	if err := errors.Join(fromErr, toErr); err != nil {
		return CheckTransitionQuery{}, err
	}

	return CheckTransitionQuery{from: from, to: to, guard: guard.NewConstructorGuard()}, nil
}

func (q CheckTransitionQuery) Validate() error {
	return q.guard.Validate(ErrCheckTransitionQueryIsNotConstructed)
}

func (q CheckTransitionQuery) From() string {
	return q.from
}

func (q CheckTransitionQuery) To() string {
	return q.to
}

type CheckTransitionQueryResponse struct {
	From  string
	To    string
	Legal bool
}

type CheckTransitionQueryHandler struct {
	validator transitionChecker
}

type transitionChecker interface {
	IsParcelTransitionLegal(from, to parcel.Status) bool
}

func NewCheckTransitionQueryHandler(validator transitionChecker) CheckTransitionQueryHandler {
	return CheckTransitionQueryHandler{validator: validator}
}

func (h CheckTransitionQueryHandler) Handle(query CheckTransitionQuery) (CheckTransitionQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CheckTransitionQueryResponse{}, err
	}

	// Unparseable codes map to parcel.Unknown, which has no outgoing edges.
	from, _ := parcel.ParseStatus(query.From())
	to, _ := parcel.ParseStatus(query.To())

	return CheckTransitionQueryResponse{
		From:  query.From(),
		To:    query.To(),
		Legal: h.validator.IsParcelTransitionLegal(from, to),
	}, nil
}
