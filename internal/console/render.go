// Package console renders viewer's views in a terminal.
package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/m-zajac/ghprofileviewer/internal/app"
)

const commitMessageMaxLen = 40

var (
	bold   = color.New(color.Bold)
	faint  = color.New(color.Faint)
	red    = color.New(color.FgRed)
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
)

// Render writes human readable form of a view to w.
func Render(w io.Writer, v app.View) {
	switch v.Phase {
	case app.PhaseEmpty:
		fmt.Fprintln(w, faint.Sprint("Aucun profil. Saisissez un nom d'utilisateur GitHub."))
	case app.PhaseLoading:
		fmt.Fprintln(w, yellow.Sprintf("Chargement de %s...", v.Subject))
	case app.PhaseError:
		fmt.Fprintln(w, red.Sprint(v.ErrorMessage))
		if v.CanRetry {
			fmt.Fprintln(w, faint.Sprint("La recherche peut être relancée."))
		}
	case app.PhasePopulated:
		renderProfile(w, v)
		renderRepositories(w, v)
	}
}

func renderProfile(w io.Writer, v app.View) {
	p := v.Profile
	if p == nil {
		return
	}

	fmt.Fprintf(w, "%s (@%s)\n", bold.Sprint(v.DisplayName), p.Login)
	for _, line := range []string{p.Bio, p.Company, p.Location, p.Blog, p.HTMLURL} {
		if line != "" {
			fmt.Fprintln(w, line)
		}
	}
	if v.MemberSince != "" {
		fmt.Fprintf(w, "Membre depuis le %s\n", v.MemberSince)
	}
	fmt.Fprintf(
		w,
		"Dépôts publics: %d  Abonnés: %d  Abonnements: %d\n",
		p.PublicRepoCount,
		p.FollowerCount,
		p.FollowingCount,
	)
}

func renderRepositories(w io.Writer, v app.View) {
	if !v.RepositoriesKnown {
		fmt.Fprintln(w, yellow.Sprint("Chargement des dépôts..."))
		return
	}
	if len(v.Repositories) == 0 {
		fmt.Fprintln(w, faint.Sprint("Aucun dépôt public."))
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Dépôt", "Étoiles", "Langage", "Workflow", "Branche", "Commit"})
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	for _, r := range v.Repositories {
		row := []string{r.Name, strconv.Itoa(r.StarCount), r.Language, "-", "", ""}
		if wf := r.Workflow; wf != nil {
			row[3] = workflowCell(wf)
			row[4] = wf.Branch
			if wf.Commit != nil {
				row[5] = commitCell(wf.Commit)
			}
		}
		table.Append(row)
	}
	table.Render()
}

func workflowCell(wf *app.WorkflowStatus) string {
	switch wf.Status {
	case app.RunStatusCompleted:
		switch wf.Conclusion {
		case app.RunConclusionSuccess:
			return green.Sprint("succès")
		case app.RunConclusionFailure:
			return red.Sprint("échec")
		default:
			return faint.Sprint("terminé")
		}
	case app.RunStatusInProgress:
		return yellow.Sprint("en cours")
	default:
		return yellow.Sprint("en attente")
	}
}

func commitCell(c *app.Commit) string {
	msg := c.Message
	if i := strings.IndexByte(msg, '\n'); i >= 0 {
		msg = msg[:i]
	}
	if r := []rune(msg); len(r) > commitMessageMaxLen {
		msg = string(r[:commitMessageMaxLen-3]) + "..."
	}

	id := c.ID
	if len(id) > 7 {
		id = id[:7]
	}
	return fmt.Sprintf("%s %s (%s)", id, msg, c.AuthorName)
}
