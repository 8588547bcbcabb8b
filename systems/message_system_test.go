package systems

import "testing"

func TestMessageLogTruncates(t *testing.T) {
	ml := NewMessageLog()
	ml.MaxMessages = 3
	for _, msg := range []string{"a", "b", "c", "d"} {
		ml.Add(msg)
	}

	recent := ml.RecentMessages(10)
	if len(recent) != 3 || recent[0].Text != "d" || recent[2].Text != "b" {
		t.Errorf("Expected [d c b], got %+v", recent)
	}
}

func TestMessageLogTypes(t *testing.T) {
	ml := NewMessageLog()
	ml.AddLevel("Day 2")
	ml.AddSystem("rebuild failed")

	recent := ml.RecentMessages(2)
	if recent[0].Type != MessageTypeSystem || recent[1].Type != MessageTypeLevel {
		t.Errorf("Unexpected message types %+v", recent)
	}
	if recent[0].GetColor() == recent[1].GetColor() {
		t.Errorf("Expected distinct colors per type")
	}
}
