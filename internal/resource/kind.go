package resource

type Kind int

const (
	Screen Kind = iota
	Page
)

func (k Kind) String() string {
	return [...]string{
		"screen",
		"page",
	}[k]
}
