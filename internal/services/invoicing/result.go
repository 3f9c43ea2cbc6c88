package invoicing

// ResultKind discriminates how an operation terminates: by sending the
// caller elsewhere or by handing back data to render.
type ResultKind int

const (
	KindRendered ResultKind = iota
	KindRedirect
)

// Result is the operation outcome. Redirects carry a Target path or URL;
// rendered results carry Data for the presentation layer.
type Result struct {
	Kind   ResultKind
	Target string
	Data   any
}

func Redirect(target string) Result {
	return Result{Kind: KindRedirect, Target: target}
}

func Rendered(data any) Result {
	return Result{Kind: KindRendered, Data: data}
}
