package request

import (
	"errors"
	"strings"

	"eligibility_hub/internal/usecase"
)

var (
	ErrInvalidMemberID    = errors.New("invalid member id")
	ErrInvalidProviderNPI = errors.New("invalid provider npi")
	ErrInvalidServiceDate = errors.New("invalid service date")
)

type SubscriberRequest struct {
	MemberID         string `json:"member_id" binding:"required"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	DateOfBirth      string `json:"date_of_birth"`
	RelationshipCode string `json:"relationship_code"`
}

type ProviderRequest struct {
	NPI              string `json:"npi" binding:"required"`
	OrganizationName string `json:"organization_name"`
}

// EligibilityRequest is the submit payload: who to verify, by which provider,
// for which service date and service type codes.
type EligibilityRequest struct {
	Subscriber   SubscriberRequest `json:"subscriber" binding:"required"`
	Provider     ProviderRequest   `json:"provider" binding:"required"`
	PayerName    string            `json:"payer_name"`
	ServiceDate  string            `json:"service_date" binding:"required"`
	ServiceTypes []string          `json:"service_types"`
}

func (r EligibilityRequest) ResolveMemberID() string {
	return strings.TrimSpace(r.Subscriber.MemberID)
}

func (r EligibilityRequest) ResolveProviderNPI() string {
	return strings.TrimSpace(r.Provider.NPI)
}

func (r EligibilityRequest) ResolveServiceDate() string {
	return strings.TrimSpace(r.ServiceDate)
}

// ToCommand validates the payload and translates it into the use case input.
func (r EligibilityRequest) ToCommand() (usecase.InquiryCommand, error) {
	memberID := r.ResolveMemberID()
	if memberID == "" {
		return usecase.InquiryCommand{}, ErrInvalidMemberID
	}
	npi := r.ResolveProviderNPI()
	if npi == "" {
		return usecase.InquiryCommand{}, ErrInvalidProviderNPI
	}
	serviceDate := r.ResolveServiceDate()
	if serviceDate == "" {
		return usecase.InquiryCommand{}, ErrInvalidServiceDate
	}

	serviceTypes := make([]string, 0, len(r.ServiceTypes))
	for _, st := range r.ServiceTypes {
		if v := strings.TrimSpace(st); v != "" {
			serviceTypes = append(serviceTypes, v)
		}
	}

	return usecase.InquiryCommand{
		MemberID:         memberID,
		FirstName:        strings.TrimSpace(r.Subscriber.FirstName),
		LastName:         strings.TrimSpace(r.Subscriber.LastName),
		DateOfBirth:      strings.TrimSpace(r.Subscriber.DateOfBirth),
		RelationshipCode: strings.TrimSpace(r.Subscriber.RelationshipCode),
		ProviderNPI:      npi,
		OrganizationName: strings.TrimSpace(r.Provider.OrganizationName),
		PayerName:        strings.TrimSpace(r.PayerName),
		ServiceDate:      serviceDate,
		ServiceTypes:     serviceTypes,
	}, nil
}
