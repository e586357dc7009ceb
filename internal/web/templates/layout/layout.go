package layout

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/mcoot/tourneyview/internal/model"
)

// FlashMessage is a one-shot notice carried across a redirect
type FlashMessage struct {
	Type    string // success, error, info
	Message string
}

// PageData is the data every page hands to the layout
type PageData struct {
	Title            string
	Flash            *FlashMessage
	CurrentView      model.View
	IsAdminLoggedIn  bool
	TournamentName   string
	TournamentStatus model.TournamentStatus
	// LiveUpdates subscribes the page to /events and reloads on change
	LiveUpdates bool
}

// Base wraps a page body in the document shell, header and flash area
func Base(data PageData, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		title := "Tournament"
		if data.Title != "" {
			title = data.Title + " | Tournament"
		}
		var b strings.Builder
		b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
		b.WriteString("<meta charset=\"utf-8\">\n")
		b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
		fmt.Fprintf(&b, "<title>%s</title>\n", templ.EscapeString(title))
		b.WriteString("<link rel=\"stylesheet\" href=\"/static/app.css\">\n")
		b.WriteString("</head>\n<body>\n")
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}

		if err := Header(data).Render(ctx, w); err != nil {
			return err
		}
		if err := Flash(data.Flash).Render(ctx, w); err != nil {
			return err
		}

		if _, err := io.WriteString(w, "<main>\n"); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}

		b.Reset()
		b.WriteString("</main>\n")
		if data.LiveUpdates {
			b.WriteString(liveUpdateScript)
		}
		b.WriteString("</body>\n</html>\n")
		_, err := io.WriteString(w, b.String())
		return err
	})
}

const liveUpdateScript = `<script>
(function () {
  if (!window.EventSource) { return; }
  var source = new EventSource("/events");
  source.addEventListener("tournament-updated", function () { window.location.reload(); });
})();
</script>
`

// Header renders the navigation bar. The Player and Admin buttons post to
// /navigate; Logout only shows when logged in.
func Header(data PageData) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<header>\n<nav>\n")
		if data.TournamentName != "" {
			fmt.Fprintf(&b, "<span class=\"tournament-name\">%s</span>\n", templ.EscapeString(data.TournamentName))
		}
		if data.TournamentStatus != "" {
			fmt.Fprintf(&b, "<span class=\"status-badge status-%s\">%s</span>\n",
				templ.EscapeString(strings.ToLower(string(data.TournamentStatus))),
				templ.EscapeString(string(data.TournamentStatus)))
		}
		b.WriteString("<form method=\"post\" action=\"/navigate\" class=\"nav-buttons\">\n")
		for _, item := range []struct {
			view  model.View
			label string
		}{{model.ViewPlayer, "Player View"}, {model.ViewAdmin, "Admin"}} {
			class := "nav-button"
			if item.view == data.CurrentView {
				class += " active"
			}
			fmt.Fprintf(&b, "<button type=\"submit\" name=\"view\" value=\"%s\" class=\"%s\">%s</button>\n",
				templ.EscapeString(string(item.view)), class, templ.EscapeString(item.label))
		}
		b.WriteString("</form>\n")
		if data.IsAdminLoggedIn {
			b.WriteString("<form method=\"post\" action=\"/logout\" class=\"logout\">\n")
			b.WriteString("<button type=\"submit\">Logout</button>\n</form>\n")
		}
		b.WriteString("</nav>\n</header>\n")
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// Flash renders the flash message, or nothing
func Flash(flash *FlashMessage) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if flash == nil || flash.Message == "" {
			return nil
		}
		_, err := fmt.Fprintf(w, "<div class=\"flash flash-%s\" role=\"status\">%s</div>\n",
			templ.EscapeString(flash.Type), templ.EscapeString(flash.Message))
		return err
	})
}
