package misc

import "testing"

func TestIdentity(t *testing.T) {
	if GetAppName() != "sct" {
		t.Errorf("GetAppName() = %q", GetAppName())
	}
	if GetVersion() == "" || GetGitHash() == "" {
		t.Errorf("version %q hash %q", GetVersion(), GetGitHash())
	}

	version, gitHash = "1.2.3", "abcdef"
	defer func() { version, gitHash = "", "" }()
	if GetVersion() != "1.2.3" || GetGitHash() != "abcdef" {
		t.Errorf("link time values ignored: %q %q", GetVersion(), GetGitHash())
	}
}
