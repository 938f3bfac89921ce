package entity

// Sexo de un animal.
const (
	SexMale   = "Macho"
	SexFemale = "Hembra"
)

// IsValidSex verifica el valor del sexo.
func IsValidSex(sex string) bool {
	return sex == SexMale || sex == SexFemale
}

// Animal representa una cabeza de ganado del registro de la finca.
// Mother y Father quedan vacíos cuando no hay parentesco registrado.
type Animal struct {
	ID        int64
	TagNumber string // número de arete
	Name      string
	Sex       string
	Age       int // edad en años
	Mother    string
	Father    string
}
