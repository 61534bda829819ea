package entity

// Unit representa uma unidade de medida (sc, m3, un, kg).
type Unit struct {
	ID          string
	Symbol      string // sigla, ex: "sc", "m3"
	Description string
}
