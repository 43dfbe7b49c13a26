package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"seva-console/internal/pkg/errs"
	"seva-console/internal/service"

	"github.com/jinzhu/copier"
	"github.com/spf13/cobra"
)

var (
	ErrNoInput       = errs.New("one of --data or --file is required")
	ErrTooManyInputs = errs.New("--data and --file are mutually exclusive")
)

// resourceCommand wires list/get/create/update/delete for one record module.
type resourceCommand[T, C, U any, P service.ListParams] struct {
	use       string
	short     string
	svc       service.Resource[T, C, U, P]
	headers   []string
	row       func(T) []string
	listFlags func(cmd *cobra.Command) func() P
}

func (rc resourceCommand[T, C, U, P]) build(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   rc.use,
		Short: rc.short,
	}
	cmd.AddCommand(
		rc.listCommand(a),
		rc.getCommand(a),
		rc.createCommand(a),
		rc.updateCommand(a),
		rc.deleteCommand(a),
	)
	return cmd
}

func (rc resourceCommand[T, C, U, P]) listCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List records",
		Args:  cobra.NoArgs,
	}
	params := rc.listFlags(cmd)
	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		items, err := rc.svc.GetAll(cmd.Context(), params())
		if err != nil {
			return err
		}
		if a.jsonOut {
			if items == nil {
				items = []T{}
			}
			return a.render().JSON(items)
		}
		rows := make([][]string, len(items))
		for i, item := range items {
			rows[i] = rc.row(item)
		}
		return a.render().Table(rc.headers, rows)
	}
	return cmd
}

func (rc resourceCommand[T, C, U, P]) getCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show one record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := rc.svc.GetByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return rc.printOne(a, item)
		},
	}
}

func (rc resourceCommand[T, C, U, P]) createCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a record from JSON",
		Args:  cobra.NoArgs,
	}
	input := inputFlags(cmd, a)
	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		var req C
		if err := input(&req); err != nil {
			return err
		}
		item, err := rc.svc.Create(cmd.Context(), req)
		if err != nil {
			return err
		}
		return rc.printOne(a, item)
	}
	return cmd
}

// updateCommand overlays the supplied fields on the current record and sends
// the complete result, the same way an edit form would.
func (rc resourceCommand[T, C, U, P]) updateCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a record; only the supplied JSON fields change",
		Args:  cobra.ExactArgs(1),
	}
	input := inputFlags(cmd, a)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		var changes U
		if err := input(&changes); err != nil {
			return err
		}

		current, err := rc.svc.GetByID(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		req, err := overlay[T, U](current, &changes)
		if err != nil {
			return err
		}

		item, err := rc.svc.Update(cmd.Context(), args[0], *req)
		if err != nil {
			return err
		}
		return rc.printOne(a, item)
	}
	return cmd
}

func (rc resourceCommand[T, C, U, P]) deleteCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return rc.svc.Delete(cmd.Context(), args[0])
		},
	}
}

func (rc resourceCommand[T, C, U, P]) printOne(a *app, item *T) error {
	if a.jsonOut {
		return a.render().JSON(item)
	}
	return a.render().Record(rc.headers, rc.row(*item))
}

// overlay applies the set fields of changes to a copy of current and returns
// an update request carrying every field.
func overlay[T, U any](current *T, changes *U) (*U, error) {
	merged := *current
	if err := copier.CopyWithOption(&merged, changes, copier.Option{IgnoreEmpty: true}); err != nil {
		return nil, errs.Wrap(err, "apply changes")
	}
	var full U
	if err := copier.Copy(&full, &merged); err != nil {
		return nil, errs.Wrap(err, "build update request")
	}
	return &full, nil
}

// inputFlags registers --data/--file and returns a decoder for them.
// --file - reads stdin.
func inputFlags(cmd *cobra.Command, a *app) func(v any) error {
	var data, file string
	cmd.Flags().StringVar(&data, "data", "", "record as inline JSON")
	cmd.Flags().StringVar(&file, "file", "", "path to a JSON file, or - for stdin")

	return func(v any) error {
		var raw []byte
		switch {
		case data != "" && file != "":
			return ErrTooManyInputs
		case data != "":
			raw = []byte(data)
		case file == "-":
			b, err := io.ReadAll(a.streams.In)
			if err != nil {
				return errs.Wrap(err, "read stdin")
			}
			raw = b
		case file != "":
			b, err := os.ReadFile(file)
			if err != nil {
				return errs.Wrapf(err, "read %s", file)
			}
			raw = b
		default:
			return ErrNoInput
		}

		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.DisallowUnknownFields()
		if err := dec.Decode(v); err != nil {
			return errs.Wrap(err, "decode input JSON")
		}
		return nil
	}
}
