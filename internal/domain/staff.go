package domain

// Employee is a minimal staff record, keyed by name.
type Employee struct {
	Name string `json:"name"`
}

// EntityID returns the employee's name, which doubles as the storage key.
func (e Employee) EntityID() string { return e.Name }

// RemoteEmployee is an Employee who works from another country.
type RemoteEmployee struct {
	Employee
	Country string `json:"country"`
}

// AsEmployee widens a RemoteEmployee to its Employee part, dropping the
// country. Useful with WriteAs to insert remote employees into a store of
// plain employees.
func (r RemoteEmployee) AsEmployee() Employee { return r.Employee }
