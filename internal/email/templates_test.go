package email

import (
	"strings"
	"testing"
)

func TestRenderTaskReminderTemplate(t *testing.T) {
	html, err := renderEmailTemplate("task_reminder.html", taskReminderEmailData{
		baseEmailData: baseEmailData{Title: "Task reminder", Heading: "Task reminder"},
		TaskTitle:     "Call Acme about renewal",
		AccountName:   "Acme Corp",
		DueDate:       "Mon, 16 Mar 2026",
	})
	if err != nil {
		t.Fatalf("render returned error: %v", err)
	}

	for _, want := range []string{"Call Acme about renewal", "Acme Corp", "Mon, 16 Mar 2026"} {
		if !strings.Contains(html, want) {
			t.Fatalf("rendered email missing %q", want)
		}
	}
}

func TestRenderLeadConvertedTemplate(t *testing.T) {
	html, err := renderEmailTemplate("lead_converted.html", leadConvertedEmailData{
		baseEmailData: baseEmailData{Title: "Lead converted", Heading: "Lead converted"},
		LeadName:      "Acme Steel",
		AccountName:   "Acme Steel Inc",
		ContactsCount: 2,
		TasksCount:    3,
	})
	if err != nil {
		t.Fatalf("render returned error: %v", err)
	}

	if !strings.Contains(html, "Acme Steel") {
		t.Fatal("rendered email missing the lead name")
	}
	if !strings.Contains(html, "Acme Steel Inc") {
		t.Fatal("rendered email missing the account name")
	}
}

func TestRenderUnknownTemplateFails(t *testing.T) {
	if _, err := renderEmailTemplate("does_not_exist.html", nil); err == nil {
		t.Fatal("expected error for a missing template")
	}
}
