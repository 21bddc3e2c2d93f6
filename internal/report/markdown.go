package report

import "strings"

// Markdown renders doc for terminals and previews. Formatting hints map to
// headings and emphasis; font sizes are dropped.
func Markdown(doc Document) string {
	var sb strings.Builder
	prevBullet := false
	for _, bl := range doc.Blocks {
		if prevBullet && bl.Kind != KindBullet {
			sb.WriteString("\n")
		}
		prevBullet = bl.Kind == KindBullet
		switch bl.Kind {
		case KindTitle:
			sb.WriteString("# " + bl.Text + "\n\n")
		case KindHeading:
			sb.WriteString("## " + bl.Text + "\n\n")
		case KindMeta:
			sb.WriteString("_" + bl.Text + "_  \n")
		case KindBullet:
			sb.WriteString("- " + bl.Text + "\n")
		case KindBlank:
			sb.WriteString("\n")
		default:
			sb.WriteString(bl.Text + "  \n")
		}
	}
	return sb.String()
}
