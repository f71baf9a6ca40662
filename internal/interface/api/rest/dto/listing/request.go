package listing

type Form struct {
	Name        string `json:"name"`
	Model       string `json:"model"`
	Year        string `json:"year"`
	Km          string `json:"km"`
	Price       string `json:"price"`
	City        string `json:"city"`
	Description string `json:"description"`
	Whatsapp    string `json:"whatsapp"`
}

func (f Form) Values() map[string]string {
	return map[string]string{
		"name":        f.Name,
		"model":       f.Model,
		"year":        f.Year,
		"km":          f.Km,
		"price":       f.Price,
		"city":        f.City,
		"description": f.Description,
		"whatsapp":    f.Whatsapp,
	}
}
