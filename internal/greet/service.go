package greet

import "fmt"

// GreetingFormat is the fixed welcome template shown on the frontend card
const GreetingFormat = "Hello, %s! Welcome to ResumeAI Desktop!"

// Service formats welcome greetings. Pure string formatting, no side effects.
type Service struct{}

// NewService creates a new greeter service
func NewService() *Service {
	return &Service{}
}

// Greet returns the welcome message for name. Never fails; an empty name
// produces an awkward but valid greeting, which is the frontend's problem.
func (s *Service) Greet(name string) string {
	return fmt.Sprintf(GreetingFormat, name)
}
