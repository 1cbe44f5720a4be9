package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gnames/gn"
	"github.com/gnames/txlist/internal/iocatalog"
	"github.com/gnames/txlist/pkg/catalog"
	"github.com/gnames/txlist/pkg/isbn"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// lookupOutput is what the lookup command prints for one identifier.
type lookupOutput struct {
	Input          string `yaml:"input"`
	ISBN           string `yaml:"isbn,omitempty"`
	Status         string `yaml:"status"`
	Error          string `yaml:"error,omitempty"`
	Key            string `yaml:"catkey,omitempty"`
	Title          string `yaml:"title,omitempty"`
	Responsibility string `yaml:"author,omitempty"`
	Edition        string `yaml:"edition,omitempty"`
	Year           string `yaml:"year,omitempty"`
	ItemType       string `yaml:"item_type,omitempty"`
	CallNumber     string `yaml:"call_number,omitempty"`
	Locations      string `yaml:"locations,omitempty"`
	Barcodes       string `yaml:"barcodes,omitempty"`
	AllISBNs       string `yaml:"all_isbns,omitempty"`
}

func getLookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup ISBN...",
		Short: "Search the catalog for identifiers",
		Long: `Normalize identifiers, search them in the catalog and print
details of every found title. Useful to check special titles or a single
row of a bookstore list.

Examples:
  txlist lookup 9780131103627 0-13-110362-8`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(
				context.Background(), os.Interrupt, syscall.SIGTERM,
			)
			defer stop()

			err := lookupAll(ctx, iocatalog.New(cfg), cmd.OutOrStdout(), args)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}
}

func lookupAll(
	ctx context.Context,
	cat catalog.Catalog,
	w io.Writer,
	inputs []string,
) error {
	res := make([]lookupOutput, 0, len(inputs))
	for _, v := range inputs {
		if err := ctx.Err(); err != nil {
			return err
		}
		res = append(res, lookupOne(ctx, cat, v))
	}

	out, err := yaml.Marshal(res)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, string(out))
	return err
}

func lookupOne(ctx context.Context, cat catalog.Catalog, input string) lookupOutput {
	res := lookupOutput{Input: input}
	id, err := isbn.Normalize(input)
	if err != nil {
		res.Status = "invalid"
		res.Error = err.Error()
		return res
	}
	res.ISBN = id

	out := catalog.Resolve(ctx, cat, id)
	res.Status = out.Status.String()
	if out.Err != nil {
		res.Error = out.Err.Error()
	}
	if out.Status != catalog.Found {
		return res
	}
	res.Key = out.Key

	rec, err := cat.Detail(ctx, out.Key)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	if rec == nil {
		res.Error = "catalog has no details for the key"
		return res
	}
	res.Title = rec.Title.Join(" ")
	res.Responsibility = rec.Responsibility.Join(" ")
	res.Edition = rec.Edition.Join(" ")
	res.Year = rec.PublicationYear.Join(" ")
	res.ItemType = rec.ItemType()
	res.CallNumber = rec.CallNumber.Join(" ")
	res.Locations = rec.Locations()
	res.Barcodes = rec.Barcodes()
	res.AllISBNs = rec.AllISBNs()
	return res
}
