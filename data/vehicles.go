package data

// Vehicle defines a registered van or bus, looked up by its license plate.
type Vehicle struct {
	ID    int64  `json:"id"`
	Plate string `json:"plate"`
	Model string `json:"model"`
	Seats int32  `json:"seats"`
}
