package request

import (
	"errors"
	"testing"
)

func TestEligibilityRequest_ResolveFields(t *testing.T) {
	r := EligibilityRequest{
		Subscriber:  SubscriberRequest{MemberID: " W123456 "},
		Provider:    ProviderRequest{NPI: " 1234567890 "},
		ServiceDate: " 2026-08-01 ",
	}
	if got := r.ResolveMemberID(); got != "W123456" {
		t.Fatalf("expected W123456, got %q", got)
	}
	if got := r.ResolveProviderNPI(); got != "1234567890" {
		t.Fatalf("expected 1234567890, got %q", got)
	}
	if got := r.ResolveServiceDate(); got != "2026-08-01" {
		t.Fatalf("expected 2026-08-01, got %q", got)
	}
}

func TestEligibilityRequest_ToCommand(t *testing.T) {
	r := EligibilityRequest{
		Subscriber: SubscriberRequest{
			MemberID:         "W123456",
			FirstName:        " Jane ",
			LastName:         "Doe",
			RelationshipCode: "18",
		},
		Provider:     ProviderRequest{NPI: "1234567890", OrganizationName: "Acme Clinic"},
		PayerName:    "Acme Health",
		ServiceDate:  "2026-08-01",
		ServiceTypes: []string{"30", "  ", "98"},
	}

	cmd, err := r.ToCommand()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd.MemberID != "W123456" || cmd.ProviderNPI != "1234567890" || cmd.ServiceDate != "2026-08-01" {
		t.Fatalf("unexpected command: %+v", cmd)
	}
	if cmd.FirstName != "Jane" {
		t.Fatalf("expected trimmed first name, got %q", cmd.FirstName)
	}
	if len(cmd.ServiceTypes) != 2 || cmd.ServiceTypes[0] != "30" || cmd.ServiceTypes[1] != "98" {
		t.Fatalf("expected blank service types dropped, got %v", cmd.ServiceTypes)
	}
}

func TestEligibilityRequest_ToCommandValidation(t *testing.T) {
	base := EligibilityRequest{
		Subscriber:  SubscriberRequest{MemberID: "W123456"},
		Provider:    ProviderRequest{NPI: "1234567890"},
		ServiceDate: "2026-08-01",
	}

	r := base
	r.Subscriber.MemberID = "   "
	if _, err := r.ToCommand(); !errors.Is(err, ErrInvalidMemberID) {
		t.Fatalf("expected ErrInvalidMemberID, got %v", err)
	}

	r = base
	r.Provider.NPI = ""
	if _, err := r.ToCommand(); !errors.Is(err, ErrInvalidProviderNPI) {
		t.Fatalf("expected ErrInvalidProviderNPI, got %v", err)
	}

	r = base
	r.ServiceDate = "  "
	if _, err := r.ToCommand(); !errors.Is(err, ErrInvalidServiceDate) {
		t.Fatalf("expected ErrInvalidServiceDate, got %v", err)
	}
}
