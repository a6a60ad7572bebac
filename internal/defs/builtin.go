package defs

const spriteBaseURL = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/"

// BuiltinKinds are the starter kinds used when no catalog file is configured.
var BuiltinKinds = []KindDefinition{
	{ID: "bulbasaur", Name: "Bulbasaur", Level: 5, Attack: 8, Range: 120, Sprite: spriteBaseURL + "1.png"},
	{ID: "charmander", Name: "Charmander", Level: 5, Attack: 10, Range: 120, Sprite: spriteBaseURL + "4.png"},
	{ID: "squirtle", Name: "Squirtle", Level: 5, Attack: 9, Range: 120, Sprite: spriteBaseURL + "7.png"},
}

// DefaultCatalog returns a catalog built from BuiltinKinds.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(BuiltinKinds)
	if err != nil {
		// BuiltinKinds is static data; a failure here is a programming error.
		panic(err)
	}
	return c
}
