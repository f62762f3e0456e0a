package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case FlowResult:
		o.printFlowResult(v)
	case AccountResult:
		o.printAccountResult(v)
	case SessionResult:
		o.printSessionResult(v)
	case ProfileResult:
		o.printProfileResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// FlowResult response type (matches API)
type FlowResult struct {
	Screen        string         `json:"screen"`
	WizardMode    string         `json:"wizard_mode"`
	ProfileStatus string         `json:"profile_status"`
	Prefill       *AccountResult `json:"prefill,omitempty"`
}

// AccountResult response type
type AccountResult struct {
	FullName    string `json:"full_name,omitempty"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
	Email       string `json:"email,omitempty"`
	UserID      string `json:"user_id,omitempty"`
}

// SessionResult response type
type SessionResult struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role,omitempty"`
}

// ProfileResult response type
type ProfileResult struct {
	UserID        string `json:"user_id"`
	Role          string `json:"role"`
	FullName      string `json:"full_name"`
	DateOfBirth   string `json:"date_of_birth"`
	Position      string `json:"position"`
	Location      string `json:"location"`
	Nationality   string `json:"nationality"`
	ClubName      string `json:"club_name,omitempty"`
	HeightCm      *int   `json:"height_cm,omitempty"`
	WeightKg      *int   `json:"weight_kg,omitempty"`
	PreferredFoot string `json:"preferred_foot"`
	HighlightLink string `json:"highlight_link,omitempty"`
	IsUnder18     bool   `json:"is_under_18"`
	Status        string `json:"status"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printFlowResult(f FlowResult) {
	fmt.Printf("Screen: %s\n", f.Screen)
	fmt.Printf("Wizard Mode: %s\n", f.WizardMode)
	fmt.Printf("Profile Status: %s\n", f.ProfileStatus)
	if f.Prefill != nil {
		fmt.Println("Prefill:")
		if f.Prefill.FullName != "" {
			fmt.Printf("  Full Name: %s\n", f.Prefill.FullName)
		}
		if f.Prefill.DateOfBirth != "" {
			fmt.Printf("  Date of Birth: %s\n", f.Prefill.DateOfBirth)
		}
		if f.Prefill.Email != "" {
			fmt.Printf("  Email: %s\n", f.Prefill.Email)
		}
	}
}

func (o *Output) printAccountResult(a AccountResult) {
	fmt.Printf("Account: %s (%s)\n", a.FullName, a.Email)
	if a.DateOfBirth != "" {
		fmt.Printf("Date of Birth: %s\n", a.DateOfBirth)
	}
	fmt.Printf("User ID: %s\n", a.UserID)
}

func (o *Output) printSessionResult(s SessionResult) {
	fmt.Printf("Signed in: %s\n", s.Email)
	fmt.Printf("User ID: %s\n", s.UserID)
	if s.Role != "" {
		fmt.Printf("Role: %s\n", s.Role)
	}
}

func (o *Output) printProfileResult(p ProfileResult) {
	fmt.Printf("Profile: %s (%s)\n", p.FullName, p.Role)
	fmt.Printf("Status: %s\n", p.Status)
	fmt.Printf("Position: %s\n", p.Position)
	fmt.Printf("Location: %s\n", p.Location)
	fmt.Printf("Nationality: %s\n", p.Nationality)
	fmt.Printf("Preferred Foot: %s\n", p.PreferredFoot)
	if p.ClubName != "" {
		fmt.Printf("Club: %s\n", p.ClubName)
	}
	if p.HeightCm != nil {
		fmt.Printf("Height: %d cm\n", *p.HeightCm)
	}
	if p.WeightKg != nil {
		fmt.Printf("Weight: %d kg\n", *p.WeightKg)
	}
	if p.HighlightLink != "" {
		fmt.Printf("Highlights: %s\n", p.HighlightLink)
	}
	if p.IsUnder18 {
		fmt.Println("Under 18: yes")
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
