package mqtt

import "testing"

func TestTopic(t *testing.T) {
	if got := Topic("motor01"); got != "motors/motor01/live" {
		t.Fatalf("Topic(motor01) = %q", got)
	}
}
