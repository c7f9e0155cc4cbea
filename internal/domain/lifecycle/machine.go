package lifecycle

import "github.com/BruksfildServices01/barbershop-manager/internal/httperr"

// Transition liga um conjunto de estados de origem a um destino.
type Transition[S ~string] struct {
	From []S
	To   S
}

// Machine é uma tabela de transições nomeadas para uma entidade.
type Machine[S ~string] struct {
	entity string
	events map[string]Transition[S]
}

func New[S ~string](entity string, events map[string]Transition[S]) *Machine[S] {
	return &Machine[S]{entity: entity, events: events}
}

func (m *Machine[S]) Entity() string {
	return m.entity
}

// Apply devolve o estado de destino do evento a partir de from.
func (m *Machine[S]) Apply(event string, from S) (S, error) {
	t, ok := m.events[event]
	if !ok {
		return from, &httperr.InvalidTransition{Entity: m.entity, From: string(from), To: event}
	}

	for _, s := range t.From {
		if s == from {
			return t.To, nil
		}
	}

	return from, &httperr.InvalidTransition{Entity: m.entity, From: string(from), To: string(t.To)}
}

// Can diz se o evento é permitido a partir de from.
func (m *Machine[S]) Can(event string, from S) bool {
	_, err := m.Apply(event, from)
	return err == nil
}

// Sources lista os estados de onde o evento pode partir.
func (m *Machine[S]) Sources(event string) []S {
	t, ok := m.events[event]
	if !ok {
		return nil
	}
	out := make([]S, len(t.From))
	copy(out, t.From)
	return out
}

// IsTerminal é verdadeiro quando nenhuma transição sai de s.
func (m *Machine[S]) IsTerminal(s S) bool {
	for _, t := range m.events {
		for _, from := range t.From {
			if from == s {
				return false
			}
		}
	}
	return true
}
