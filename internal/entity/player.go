package entity

type Player struct {
	Name string
	Mark Mark
}
