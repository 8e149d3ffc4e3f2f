package services

// Services defined in this package:
// - EnrollmentService: the enrollment rule engine over the entity store
// - AuthService: student registration and name/ID login with session tokens
