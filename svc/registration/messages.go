package registration

// Messages shown next to form inputs.
const (
	msgNameRequired     = "Name is required"
	msgNameTooShort     = "Name must be at least 2 characters"
	msgAgeRequired      = "Age is required"
	msgAgeInvalid       = "Please enter a valid age"
	msgWeightRequired   = "Weight is required"
	msgWeightInvalid    = "Please enter a valid weight"
	msgGenderRequired   = "Gender is required"
	msgGenderInvalid    = "Please enter either Male or Female"
	msgEmailRequired    = "Email is required"
	msgEmailInvalid     = "Please enter a valid email"
	msgUsernameRequired = "Username is required"
	msgUsernameTooShort = "Username must be at least 4 characters"
	msgPasswordRequired = "Password is required"
	msgPasswordWeak     = "Password must be at least 8 characters with 1 uppercase, 1 lowercase, and 1 number"
	msgConfirmRequired  = "Please confirm your password"
	msgConfirmMismatch  = "Passwords do not match"
)
