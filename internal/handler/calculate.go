package handler

import (
	"errors"

	"github.com/tkessler/parley/internal/calc"
)

// Calculate evaluates a spoken arithmetic expression. All evaluation errors
// stay local to this handler.
func (h *Handlers) Calculate(text string) Response {
	expr := calc.Prepare(text)
	if expr == "" {
		return Response{Text: "What should I calculate?"}
	}

	result, err := calc.Evaluate(expr)
	switch {
	case errors.Is(err, calc.ErrDivideByZero):
		return Response{Text: "Cannot divide by zero!"}
	case errors.Is(err, calc.ErrDisallowed):
		return Response{Text: "I can only calculate plain arithmetic with numbers, + - * / and parentheses."}
	case errors.Is(err, calc.ErrExponent):
		return Response{Text: "That exponent is too large for me."}
	case err != nil:
		return Response{Text: "Sorry, I couldn't calculate that."}
	}

	return Response{Text: "The result is " + calc.Format(result)}
}
