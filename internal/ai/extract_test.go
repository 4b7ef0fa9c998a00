package ai

import "testing"

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "labeled fence with surrounding prose",
			raw:  "Here is your itinerary:\n```json\n{\"title\": \"Goa\"}\n```\nEnjoy your trip!",
			want: `{"title": "Goa"}`,
		},
		{
			name: "labeled fence inline",
			raw:  "prefix ```json {\"a\": 1} ``` suffix",
			want: `{"a": 1}`,
		},
		{
			name: "unlabeled fence",
			raw:  "```\n{\"title\": \"Goa\"}\n```",
			want: `{"title": "Goa"}`,
		},
		{
			name: "no fence returns full trimmed text",
			raw:  "  {\"title\": \"Goa\"}\n",
			want: `{"title": "Goa"}`,
		},
		{
			name: "labeled fence wins over later unlabeled",
			raw:  "```json\n{\"a\": 1}\n```\n```\n{\"b\": 2}\n```",
			want: `{"a": 1}`,
		},
		{
			name: "unterminated fence takes the remainder",
			raw:  "```json\n{\"a\": 1}",
			want: `{"a": 1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSON(tt.raw)
			if err != nil {
				t.Fatalf("ExtractJSON() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ExtractJSON() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractJSON_Empty(t *testing.T) {
	for _, raw := range []string{"", "   \n\t", "```json\n\n```"} {
		if _, err := ExtractJSON(raw); err != ErrNoPayload {
			t.Errorf("ExtractJSON(%q) error = %v, want ErrNoPayload", raw, err)
		}
	}
}
