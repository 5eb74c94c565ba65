package models

// Category groups services that share one weekly availability template
// (e.g. "Eyelash", "Waxing", "Foot Care").
type Category struct {
	ID   string `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
}
