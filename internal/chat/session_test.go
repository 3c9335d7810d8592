package chat

import "testing"

func TestSession_AppendPreservesOrder(t *testing.T) {
	s := NewSession()
	s.Append(RoleUser, "primera")
	s.Append(RoleAssistant, "respuesta")
	s.Append(RoleUser, "segunda")

	turns := s.History()
	if len(turns) != 3 {
		t.Fatalf("expected 3 turns, got %d", len(turns))
	}
	want := []Turn{
		{RoleUser, "primera"},
		{RoleAssistant, "respuesta"},
		{RoleUser, "segunda"},
	}
	for i, turn := range turns {
		if turn != want[i] {
			t.Errorf("turn %d = %+v, want %+v", i, turn, want[i])
		}
	}
}

func TestSession_HistoryIsACopy(t *testing.T) {
	s := NewSession()
	s.Append(RoleUser, "hola")

	turns := s.History()
	turns[0].Content = "mutado"

	if s.History()[0].Content != "hola" {
		t.Error("History must return an independent copy")
	}
}

func TestSession_Clear(t *testing.T) {
	s := NewSession()
	s.Append(RoleUser, "hola")
	s.Clear()

	if s.Len() != 0 {
		t.Errorf("expected empty session after Clear, got %d turns", s.Len())
	}
}

func TestSession_IDsAreUnique(t *testing.T) {
	if NewSession().ID() == NewSession().ID() {
		t.Error("sessions should get distinct IDs")
	}
}
