package flow

const (
	titleMainMenu = "--- MENU ---"
	titleAreas    = "--- TUTORING AREAS ---"
	titleSessions = "--- Sessions in %s ---"

	optRegister = "1. Register"
	optLogin    = "2. Log in"
	optExit     = "3. Exit"
	optLogout   = "%d. Log out"

	promptOption        = "Choose an option"
	promptEmail         = "Enter your email"
	promptPassword      = "Enter your password (at least one uppercase letter and one digit)"
	promptLoginEmail    = "Email"
	promptLoginPassword = "Password"
	promptInlineSignup  = "Do you want to register with this email? (y/n)"
	promptArea          = "Choose an area to see its sessions"
	promptBook          = "Do you want to book a session? (y/n)"
	promptSessionNumber = "Enter the number of the session to book"

	msgInvalidOption    = "Invalid option."
	msgInvalidEntry     = "Invalid entry."
	msgInvalidEmail     = "Invalid email."
	msgDuplicateEmail   = "That email is already registered."
	msgWeakPassword     = "The password does not meet the requirements."
	msgRegistered       = "Registration successful."
	msgRegisteredInline = "User registered with the provided email."
	msgNotSaved         = "Warning: your account could not be saved and will only last until you exit."
	msgRegisterFailed   = "Registration failed."
	msgLoginOK          = "Login successful!"
	msgBadCredentials   = "Incorrect email or password."
	msgCancelled        = "Operation cancelled."
	msgLoggedOut        = "Session closed."
	msgNoSessions       = "No sessions available."
	msgReserved         = "Reservation confirmed! Have a nice day."
	msgReserveFailed    = "The reservation could not be saved."
	msgGoodbye          = "Goodbye!"

	sessionInstructor = "%d. Instructor: %s"
	sessionDate       = "   Date: %s"
	sessionTime       = "   Time: %s"
)
