package types

import "github.com/a-h/templ"

type NavigationItem struct {
	Name     string
	Icon     templ.Component
	Href     string
	Children []NavigationItem
}
