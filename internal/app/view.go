package app

// View is the render-ready projection of State.
// Profile and Repositories are set only in PhasePopulated.
type View struct {
	Session      uint64
	Version      uint64
	Subject      string
	Phase        Phase
	Settled      bool
	ErrorKind    ErrorKind
	ErrorMessage string
	CanRetry     bool

	Profile           *Profile
	DisplayName       string
	MemberSince       string
	Repositories      []RepositoryView
	RepositoriesKnown bool
}

// RepositoryView joins repository with its latest workflow run, if already known.
type RepositoryView struct {
	Repository
	Workflow *WorkflowStatus
}

// Reduce derives view from state.
func Reduce(s State) View {
	v := View{
		Session: s.Session,
		Version: s.Version,
		Subject: s.Subject,
		Settled: s.Settled,
	}

	switch {
	case !s.Started:
		v.Phase = PhaseEmpty
	case s.Loading:
		v.Phase = PhaseLoading
	case s.Err != nil:
		v.Phase = PhaseError
		v.ErrorKind, v.ErrorMessage = Classify(s.Err)
		v.CanRetry = true
	case s.Profile != nil:
		v.Phase = PhasePopulated
		p := *s.Profile
		v.Profile = &p
		v.DisplayName = p.Name()
		v.MemberSince = FormatDate(p.CreatedAt)
		v.RepositoriesKnown = s.RepositoriesKnown
		v.Repositories = make([]RepositoryView, 0, len(s.Repositories))
		for _, r := range s.Repositories {
			rv := RepositoryView{Repository: r}
			if w, ok := s.Workflows[r.Name]; ok {
				w := w
				rv.Workflow = &w
			}
			v.Repositories = append(v.Repositories, rv)
		}
	default:
		v.Phase = PhaseEmpty
	}

	return v
}
