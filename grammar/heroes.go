package grammar

import "fmt"

// SuperheroRules is the grammar for sentences about superheroes. It is taken as
// is: e.g., plural noun phrases (NP_PL) are defined but no noun phrase conjunction
// ever leads to them, as S only accepts NP_PL through its second alternative.
var SuperheroRules = []string{
	`# Syntactic rules
	S       -> NP_SG V_SG S_PRIME
	S       -> NP_PL V_PL S_PRIME
	S_PRIME -> CONJ S |`,

	`# Singular noun phrases
	NP_SG -> DET N | DET ADJ N | N`,

	`# Plural noun phrases
	NP_PL -> NP_SG CONJ NP_SG`,

	`# Verb phrases
	V_SG  -> V_S V_OPT | ADV V_S V_OPT
	V_OPT -> NP_SG PP | NP_SG | PP | ADV |
	V_PL  -> V_P V_OPT | ADV V_P V_OPT`,

	`# Prepositional phrases
	PP -> PREP NP_SG | PREP NP_PL`,

	`# Superheroes and villains
	N -> 'iron man' | 'spider-man' | 'thor' | 'hulk' | 'black widow' | 'captain america' | 'doctor strange' | 'black panther'
	N -> 'thanos' | 'loki' | 'ultron' | 'green goblin'`,

	`# Objects
	N -> 'shield' | 'hammer' | 'suit' | 'web' | 'portal' | 'stone' | 'city' | 'universe'`,

	`# Verbs
	V_S -> 'fights' | 'saves' | 'protects' | 'defeats' | 'flies' | 'shoots' | 'throws' | 'builds' | 'creates' | 'uses'
	V_P -> 'fight' | 'save' | 'protect' | 'defeat' | 'fly' | 'shoot' | 'throw' | 'build' | 'create' | 'use'`,

	`# Other lexical categories
	DET  -> 'the' | 'a' | 'an' | 'this' | 'that'
	CONJ -> 'and' | 'or' | 'but' | 'because'
	PREP -> 'in' | 'on' | 'with' | 'from' | 'to' | 'against'
	ADV  -> 'quickly' | 'bravely' | 'secretly' | 'suddenly'
	ADJ  -> 'powerful' | 'amazing' | 'strong' | 'intelligent' | 'brave' | 'magical' | 'dangerous' | 'evil'`,
}

// Superheroes builds the superhero grammar from SuperheroRules. Every call
// creates a new grammar.
func Superheroes() *Grammar {
	g, err := Build("Superheroes", SuperheroRules)
	if err != nil {
		panic(fmt.Sprintf("superhero grammar is broken: %v", err))
	}
	return g
}
