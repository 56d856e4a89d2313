package browser

import (
	"errors"
	"testing"
)

func TestOpenRejectsNonHTTP(t *testing.T) {
	var launched []string
	launch = func(name string, args ...string) error {
		launched = append(launched, args[len(args)-1])
		return nil
	}
	t.Cleanup(func() { launch = defaultLaunch })

	tests := []struct {
		url     string
		wantErr bool
	}{
		{"https://example.com/story", false},
		{"http://example.com", false},
		{"#", true},
		{"file:///etc/passwd", true},
		{"javascript:alert(1)", true},
		{"ftp://example.com", true},
		{"https://", true},
		{"", true},
	}

	for _, tt := range tests {
		err := Open(tt.url)
		if (err != nil) != tt.wantErr {
			t.Errorf("Open(%q) err = %v, wantErr %v", tt.url, err, tt.wantErr)
		}
	}

	if len(launched) != 2 {
		t.Errorf("launched %v, want only the two http(s) URLs", launched)
	}
}

func TestOpenPropagatesLaunchError(t *testing.T) {
	boom := errors.New("no opener")
	launch = func(name string, args ...string) error { return boom }
	t.Cleanup(func() { launch = defaultLaunch })

	if err := Open("https://example.com"); !errors.Is(err, boom) {
		t.Errorf("Open err = %v, want %v", err, boom)
	}
}
