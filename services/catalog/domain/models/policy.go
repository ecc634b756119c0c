package models

// Rule says whether a field must be given for a category or is never stored.
type Rule int

const (
	Required Rule = iota + 1
	Forbidden
)

// Policy lists the rules for the fields whose presence depends on category.
// Color and seasons are required for every category.
type Policy struct {
	Material  Rule
	SubType   Rule
	Occasions Rule
}

// Policies is the category policy table.
var Policies = map[Category]Policy{
	CategoryTop:       {Material: Required, SubType: Required, Occasions: Required},
	CategoryBottom:    {Material: Required, SubType: Required, Occasions: Required},
	CategoryOuterwear: {Material: Required, SubType: Forbidden, Occasions: Required},
	CategorySocks:     {Material: Forbidden, SubType: Required, Occasions: Forbidden},
}
