package mqtt

import "testing"

func TestTopics(t *testing.T) {
	topics := Topics{}

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"system status", topics.SystemStatus(), "zclconf/system/status"},
		{"endpoint", topics.Endpoint(12), "zclconf/endpoint/12"},
		{"session endpoints", topics.SessionEndpoints(3), "zclconf/session/3/endpoints"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}
