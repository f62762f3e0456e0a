package model

// WizardMode identifies the screen currently shown in the unauthenticated
// signup flow. Exactly one mode is active at a time; modes are meaningful
// only while no session is present.
type WizardMode string

const (
	ModeLogin               WizardMode = "login"
	ModeSelectAccountType   WizardMode = "select_account_type"
	ModePlayerSignupAccount WizardMode = "player_signup_account"
	ModeParentSignupAccount WizardMode = "parent_signup_account"
	ModePlayerProfileSetup  WizardMode = "player_profile_setup"
	ModeChildProfileSetup   WizardMode = "child_profile_setup"
	ModeSignupComplete      WizardMode = "signup_complete"
)

// WizardEvent is an input to the wizard state machine.
type WizardEvent string

const (
	EventRequestSignup  WizardEvent = "request_signup"
	EventChosePlayer    WizardEvent = "chose_player"
	EventChoseParent    WizardEvent = "chose_parent"
	EventAccountCreated WizardEvent = "account_created"
	EventPlayerUnderage WizardEvent = "player_underage"
	EventProfileSaved   WizardEvent = "profile_saved"
	EventReturnToLogin  WizardEvent = "return_to_login"
)

// Transition computes the next wizard mode for an event.
//
// EventReturnToLogin is accepted from every mode; callers are expected to
// clear transient account data alongside it. All other pairs not listed in
// the table return ErrInvalidTransition and leave the caller's mode
// unchanged, which is what lets a failed profile save stay on the setup
// screen for retry.
func Transition(mode WizardMode, event WizardEvent) (WizardMode, error) {
	if event == EventReturnToLogin {
		return ModeLogin, nil
	}

	switch mode {
	case ModeLogin:
		if event == EventRequestSignup {
			return ModeSelectAccountType, nil
		}
	case ModeSelectAccountType:
		switch event {
		case EventChosePlayer:
			return ModePlayerSignupAccount, nil
		case EventChoseParent:
			return ModeParentSignupAccount, nil
		}
	case ModePlayerSignupAccount:
		switch event {
		case EventAccountCreated:
			return ModePlayerProfileSetup, nil
		case EventPlayerUnderage:
			// Account creation was blocked locally; a parent or guardian
			// has to register instead.
			return ModeSelectAccountType, nil
		}
	case ModeParentSignupAccount:
		if event == EventAccountCreated {
			return ModeSignupComplete, nil
		}
	case ModePlayerProfileSetup, ModeChildProfileSetup:
		if event == EventProfileSaved {
			return ModeSignupComplete, nil
		}
	case ModeSignupComplete:
		// Only return_to_login leaves this mode, handled above.
	}

	return mode, ErrInvalidTransition
}

// ProfileStatus tracks whether the authenticated user has a profile record.
// It is meaningful only while a session is present and resets to idle
// whenever the session changes.
type ProfileStatus string

const (
	ProfileStatusIdle         ProfileStatus = "idle"
	ProfileStatusLoading      ProfileStatus = "loading"
	ProfileStatusNeedsProfile ProfileStatus = "needs_profile"
	ProfileStatusHasProfile   ProfileStatus = "has_profile"
)

// AccountType is the account category picked on the selection screen.
type AccountType string

const (
	AccountTypePlayer AccountType = "player"
	AccountTypeParent AccountType = "parent"
	AccountTypeCoach  AccountType = "coach"
	AccountTypeScout  AccountType = "scout"
)

// ParseAccountType validates a raw account type string.
func ParseAccountType(s string) (AccountType, error) {
	switch AccountType(s) {
	case AccountTypePlayer, AccountTypeParent, AccountTypeCoach, AccountTypeScout:
		return AccountType(s), nil
	}
	return "", ErrUnknownAccountType
}
