package domain

// Lead is the workflow's read snapshot of the lead record. Empty string means
// the field is absent; that makes the field-by-field commit merge direct.
type Lead struct {
	Name        string
	CompanyType string
	Phone       string
	Email       string
	Website     string
	Street      string
	City        string
	State       string
	ZipCode     string
	Notes       string
	Tags        []string
}

// LeadPatch carries validation-step edits that are applied upstream before
// the workflow proceeds. Nil fields are untouched.
type LeadPatch struct {
	Name    *string
	Phone   *string
	Email   *string
	Website *string
	Street  *string
	City    *string
	State   *string
	ZipCode *string
	Notes   *string
}

// Empty reports whether the patch carries no edits.
func (p LeadPatch) Empty() bool {
	return p.Name == nil && p.Phone == nil && p.Email == nil && p.Website == nil &&
		p.Street == nil && p.City == nil && p.State == nil && p.ZipCode == nil &&
		p.Notes == nil
}

// AccountDraft is the account field set staged at the AccountCreation step.
// At commit time draft values win over lead values field-by-field.
type AccountDraft struct {
	Name        string
	CompanyType string
	Phone       string
	Email       string
	Website     string
	Street      string
	City        string
	State       string
	ZipCode     string
	Notes       string
}

// PropertyDraft is the property field set staged for the NewProperty path.
type PropertyDraft struct {
	Name         string
	BuildingType string
	Street       string
	City         string
	State        string
	ZipCode      string
}

// ContactDraft is one staged contact.
type ContactDraft struct {
	FirstName string
	LastName  string
	Title     string
	Email     string
	Phone     string
	IsPrimary bool
}

// TaskTemplate describes one follow-up task to create at commit time. The
// absolute due date is derived from OffsetDays and the commit timestamp, not
// stored here.
type TaskTemplate struct {
	Title       string
	Description string
	Category    string
	Priority    string
	OffsetDays  int
}
