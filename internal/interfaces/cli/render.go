package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/jhoicas/Almacen-cli/internal/domain/entity"
)

// renderTable imprime una tabla alineada con tabwriter.
func renderTable(w io.Writer, headers []string, rows [][]string) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	tw.Flush()
}

// renderCounts resume los contadores de inventario en una línea.
func renderCounts(c entity.InventoryCounts) string {
	return fmt.Sprintf("total=%d disponibles=%d reservados=%d en-tránsito=%d dañados=%d vencidos=%d agotados=%d",
		c.Total, c.Available, c.Reserved, c.InTransit, c.Damaged, c.Expired, c.OutOfStock)
}

// dash devuelve "—" para strings vacíos.
func dash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

// boolMark marca de éxito/fallo para tablas.
func boolMark(b bool) string {
	if b {
		return "OK"
	}
	return "ERROR"
}
