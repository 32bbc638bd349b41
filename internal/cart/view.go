package cart

import (
	"html/template"
	"strings"

	"tecstore/internal/domain"
	"tecstore/internal/money"
)

// View renders the cart contents and the account menu as HTML fragments.
// Rendering is a pure function of the inputs and fully replaces prior
// content on every call.
type View struct {
	formatter *money.Formatter
	cartTmpl  *template.Template
	menuTmpl  *template.Template
}

const cartTemplate = `{{if not .Items}}<p>Tu carrito está vacío.</p>
{{else}}{{range .Items}}<div class="cart-item">
	<div class="meta">
		<div><strong>{{.Name}}</strong></div>
		<div>{{.UnitPrice}} · x{{.Quantity}}</div>
	</div>
	<div class="controls">
		<button class="dec" data-id="{{.ID}}">-</button>
		<button class="inc" data-id="{{.ID}}">+</button>
		<button class="rem" data-id="{{.ID}}">Eliminar</button>
	</div>
</div>
{{end}}{{end}}<div class="cart-total">{{.Total}}</div>
`

const menuTemplate = `{{if .LoggedIn}}<a href="profile.html" role="menuitem" class="menu-link">Mi cuenta</a>
<a href="#" id="logout-link" role="menuitem" class="menu-link">Cerrar sesión</a>
{{else}}<a href="login.html" role="menuitem" class="menu-link">Iniciar sesión</a>
<a href="register.html" role="menuitem" class="menu-link">Crear cuenta</a>
{{end}}`

func NewView(formatter *money.Formatter) *View {
	return &View{
		formatter: formatter,
		cartTmpl:  template.Must(template.New("cart").Parse(cartTemplate)),
		menuTmpl:  template.Must(template.New("menu").Parse(menuTemplate)),
	}
}

type cartRow struct {
	ID        domain.ItemID
	Name      string
	UnitPrice string
	Quantity  int
}

type cartViewData struct {
	Items []cartRow
	Total string
}

// RenderCart produces the cart fragment: a placeholder plus zero total for
// an empty cart, otherwise one row per item and the grand total.
func (v *View) RenderCart(items []domain.CartItem) (string, error) {
	data := cartViewData{Items: make([]cartRow, 0, len(items))}
	var total float64
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
		data.Items = append(data.Items, cartRow{
			ID:        it.ID,
			Name:      it.Name,
			UnitPrice: v.formatter.Format(it.Price),
			Quantity:  it.Quantity,
		})
	}
	data.Total = v.formatter.Format(total)

	var buf strings.Builder
	if err := v.cartTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderMenu produces the account menu fragment for the given session. An
// empty email renders the anonymous menu.
func (v *View) RenderMenu(email string) (string, error) {
	var buf strings.Builder
	err := v.menuTmpl.Execute(&buf, struct {
		LoggedIn bool
		Email    string
	}{LoggedIn: email != "", Email: email})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
