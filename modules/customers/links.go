package customers

import (
	"github.com/altora/backoffice/pkg/types"
)

var TitlesLink = types.NavigationItem{
	Name:     "NavigationLinks.Titles",
	Icon:     nil,
	Href:     "/customers/titles",
	Children: nil,
}

var CustomersLink = types.NavigationItem{
	Name: "NavigationLinks.Customers",
	Icon: nil,
	Href: "/customers",
	Children: []types.NavigationItem{
		TitlesLink,
	},
}

var NavItems = []types.NavigationItem{
	CustomersLink,
}
