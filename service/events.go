package service

//Event represents a validation counter event
type Event string

const (
	//Pending counts in flight validations
	Pending Event = "Pending"
	//Error counts aborted validations
	Error Event = "Error"
	//Success counts completed validations
	Success Event = "Success"
)
