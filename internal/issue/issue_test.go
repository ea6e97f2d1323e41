// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

func TestGet_KnownIds(t *testing.T) {
	ids := []Id{
		ConfigLoadFailedId,
		AssistantNotFoundId,
		AssistantNotFoundRemoteId,
		LaunchFailedId,
		WorkdirInvalidId,
		InteractiveUnsupportedId,
	}

	for _, id := range ids {
		entry := Get(id)
		if entry == nil {
			t.Errorf("Get(%d) = nil, want catalog entry", id)
			continue
		}
		if entry.Id() != id {
			t.Errorf("Get(%d).Id() = %d", id, entry.Id())
		}
		if strings.TrimSpace(string(entry.MarkdownMsg())) == "" {
			t.Errorf("Get(%d) has empty markdown message", id)
		}
	}
}

func TestGet_UnknownId(t *testing.T) {
	if entry := Get(Id(9999)); entry != nil {
		t.Errorf("Get(9999) = %v, want nil", entry)
	}
}

func TestRemoteNotFoundMentionsRemoteInstall(t *testing.T) {
	msg := string(Get(AssistantNotFoundRemoteId).MarkdownMsg())
	if !strings.Contains(msg, "remote") {
		t.Errorf("remote not-found issue does not mention the remote host: %q", msg)
	}

	local := string(Get(AssistantNotFoundId).MarkdownMsg())
	if strings.Contains(local, "remote workspace") {
		t.Errorf("local not-found issue should not carry remote guidance: %q", local)
	}
}

func TestValues_CoversCatalog(t *testing.T) {
	if got := len(Values()); got != len(issues) {
		t.Errorf("Values() returned %d entries, want %d", got, len(issues))
	}
}
