package ports

// Navigator moves the user to another route, e.g. the login surface after
// the session was cleared.
type Navigator interface {
	Navigate(path string)
}
