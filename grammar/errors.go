package grammar

import (
	"errors"
	"fmt"

	"github.com/npillmayer/gebnf/ebnf"
)

// Sentinel errors, to be checked with errors.Is.
var (
	ErrUnknownIdentifier  = errors.New("unknown identifier")
	ErrUnsupported        = errors.New("unsupported construct")
	ErrInvariantViolation = errors.New("grammar invariant violated")
	ErrDuplicateName      = errors.New("duplicate definition")
	ErrMalformedRule      = errors.New("malformed rule")
)

// UnknownIdentifierError is returned by the builder if a rule references a
// name without a corresponding definition.
type UnknownIdentifierError struct {
	Name string
}

func (e *UnknownIdentifierError) Error() string {
	return fmt.Sprintf("unknown identifier %q", e.Name)
}

func (e *UnknownIdentifierError) Unwrap() error { return ErrUnknownIdentifier }

// UnsupportedConstructError is returned by the builder for EBNF constructs
// which cannot be desugared (currently set-difference).
type UnsupportedConstructError struct {
	Definition string
	Rule       ebnf.Rule
}

func (e *UnsupportedConstructError) Error() string {
	return fmt.Sprintf("unsupported construct in definition %q: %v", e.Definition, e.Rule)
}

func (e *UnsupportedConstructError) Unwrap() error { return ErrUnsupported }

// DuplicateDefinitionError is returned by the builder if two definitions
// share a name.
type DuplicateDefinitionError struct {
	Name string
}

func (e *DuplicateDefinitionError) Error() string {
	return fmt.Sprintf("identifier %q defined more than once", e.Name)
}

func (e *DuplicateDefinitionError) Unwrap() error { return ErrDuplicateName }

// MalformedRuleError is returned by the builder for rule trees which do not
// describe a language, e.g. nil rules or alternations without alternatives.
type MalformedRuleError struct {
	Definition string
	Reason     string
}

func (e *MalformedRuleError) Error() string {
	return fmt.Sprintf("malformed rule in definition %q: %s", e.Definition, e.Reason)
}

func (e *MalformedRuleError) Unwrap() error { return ErrMalformedRule }

// InvariantViolationError signals a malformed grammar store found during
// analysis. It indicates a defect in the code which produced the store,
// never a user error.
type InvariantViolationError struct {
	ID     NonTermID
	Reason string
}

func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("invariant violated for nonterminal <%d>: %s", e.ID, e.Reason)
}

func (e *InvariantViolationError) Unwrap() error { return ErrInvariantViolation }
