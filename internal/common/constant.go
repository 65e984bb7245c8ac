package common

// Default record files, relative to the working directory.
const (
	DefaultUsersFile        = "usuarios.txt"
	DefaultReservationsFile = "reservas.txt"
)
