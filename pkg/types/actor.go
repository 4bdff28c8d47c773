package types

// Actor identifies the authenticated user performing a call. It is threaded
// explicitly through every service and policy call; nothing below the HTTP
// layer reads ambient session state.
type Actor struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Portfolio string `json:"portfolio"`
}
