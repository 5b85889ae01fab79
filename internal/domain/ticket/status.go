package ticket

import "fmt"

// Status is the lifecycle state of a ticket. The enumeration is ordered by
// lifecycle: aberto precedes em_atendimento and aguardando_cliente, which
// precede the terminal states fechado and cancelado.
type Status string

const (
	StatusOpen           Status = "aberto"
	StatusInService      Status = "em_atendimento"
	StatusAwaitingClient Status = "aguardando_cliente"
	StatusClosed         Status = "fechado"
	StatusCancelled      Status = "cancelado"
)

var validStatuses = map[Status]bool{
	StatusOpen:           true,
	StatusInService:      true,
	StatusAwaitingClient: true,
	StatusClosed:         true,
	StatusCancelled:      true,
}

var statusTransitions = map[Status][]Status{
	StatusOpen: {
		StatusInService,
		StatusAwaitingClient,
		StatusClosed,
		StatusCancelled,
	},
	StatusInService: {
		StatusAwaitingClient,
		StatusClosed,
		StatusCancelled,
	},
	StatusAwaitingClient: {
		StatusInService,
		StatusClosed,
		StatusCancelled,
	},
	StatusClosed:    {},
	StatusCancelled: {},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

func (s Status) IsOpen() bool {
	return s == StatusOpen
}

func (s Status) IsClosed() bool {
	return s == StatusClosed
}

func (s Status) IsCancelled() bool {
	return s == StatusCancelled
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == StatusClosed || s == StatusCancelled
}

// DisplayName returns the human-facing label used in listings and reports.
func (s Status) DisplayName() string {
	switch s {
	case StatusOpen:
		return "Aberto"
	case StatusInService:
		return "Em Atendimento"
	case StatusAwaitingClient:
		return "Aguardando Cliente"
	case StatusClosed:
		return "Fechado"
	case StatusCancelled:
		return "Cancelado"
	}
	return string(s)
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return st, nil
}
