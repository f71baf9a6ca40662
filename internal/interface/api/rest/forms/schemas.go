package forms

import "regexp"

const minPasswordLen = 6

// Brazilian phone numbers: national number plus area code, 11 or 12
// digits, no separators.
var whatsappRe = regexp.MustCompile(`^\d{11,12}$`)

// The messages are the product's user-facing strings and stay in
// Portuguese.
var (
	Register = Schema{
		{Name: "name", Rules: []Rule{
			Required("O campo nome é obrigatório"),
		}},
		{Name: "email", Rules: []Rule{
			Required("O campo e-mail é obrigatório"),
			Email("Insira um e-mail válido"),
		}},
		{Name: "password", Rules: []Rule{
			Required("O campo senha é obrigatório"),
			MinLen(minPasswordLen, "A senha deve pelo menos 6 caracteres"),
		}},
	}

	Login = Schema{
		{Name: "email", Rules: []Rule{
			Required("O campo e-mail é obrigatório"),
			Email("Insira um e-mail válido"),
		}},
		{Name: "password", Rules: []Rule{
			Required("O campo senha é obrigatório"),
		}},
	}

	Listing = Schema{
		{Name: "name", Rules: []Rule{
			Required("O nome é obrigatório"),
		}},
		{Name: "model", Rules: []Rule{
			Required("O modelo é obrigatório"),
		}},
		{Name: "year", Rules: []Rule{
			Required("O ano é obrigatório"),
		}},
		{Name: "km", Rules: []Rule{
			Required("O km é obrigatório"),
		}},
		{Name: "price", Rules: []Rule{
			Required("O preço é obrigatório"),
		}},
		{Name: "city", Rules: []Rule{
			Required("A cidade é obrigatória"),
		}},
		{Name: "description", Rules: []Rule{
			Required("A descrição é obrigatória"),
		}},
		{Name: "whatsapp", Rules: []Rule{
			Required("O telefone é obrigatório"),
			Match(whatsappRe, "Número de telefone inválido"),
		}},
	}
)
