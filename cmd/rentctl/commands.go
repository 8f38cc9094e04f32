package main

import (
	"book_rental_dapp/internal/economics"
	"book_rental_dapp/internal/model"
	"book_rental_dapp/internal/repository"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"text/tabwriter"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/spf13/cobra"
)

func catalogCmd(a *app) *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Show the catalogue, or one page of it with --page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.connect(ctx); err != nil {
				return err
			}

			if page > 0 {
				catalogPage, err := a.aggregator.LoadPage(ctx, a.sess.Snapshot(), page-1, a.cfg.BooksPerPage)
				if err != nil {
					return err
				}
				printBooks(cmd.OutOrStdout(), catalogPage.Books)
				fmt.Fprintf(cmd.OutOrStdout(), "\npage %d, %d books total\n", page, catalogPage.Total)
				return nil
			}

			books, err := a.aggregator.LoadCatalog(ctx, a.sess.Snapshot())
			if err != nil {
				return err
			}
			printBooks(cmd.OutOrStdout(), books)
			return nil
		},
	}
	cmd.Flags().IntVar(&page, "page", 0, "1-based page number, 0 shows everything")

	return cmd
}

func bookCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "book <id>",
		Short: "Show one book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if err = a.connect(ctx); err != nil {
				return err
			}

			book, err := a.aggregator.LoadSingle(ctx, id, a.sess.Snapshot())
			if err != nil {
				return err
			}

			printBook(cmd.OutOrStdout(), book)
			return nil
		},
	}
}

func rentalsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rentals",
		Short: "Show the books the account currently rents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.connect(ctx); err != nil {
				return err
			}

			rentals, err := a.aggregator.LoadRentals(ctx, a.sess.Snapshot())
			if err != nil {
				return err
			}

			if len(rentals) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no active rentals")
				return nil
			}

			for _, book := range rentals {
				printBook(cmd.OutOrStdout(), book)
				fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	}
}

func quoteCmd(a *app) *cobra.Command {
	var days uint64

	cmd := &cobra.Command{
		Use:   "quote <id>",
		Short: "Show the value a rent transaction has to carry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			sub, err := a.signingSession(cmd.Context())
			if err != nil {
				return err
			}

			value, rec, err := sub.Quote(cmd.Context(), id, days)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "book %d, %s ETH/day, available: %t\n", rec.ID, economics.FormatEther(rec.DailyRentWei), rec.IsAvailable)
			fmt.Fprintf(cmd.OutOrStdout(), "required value: %s ETH (%s wei)\n", economics.FormatEther(value), value)
			return nil
		},
	}
	cmd.Flags().Uint64Var(&days, "days", 1, "rental length in days (time-based contracts)")

	return cmd
}

func rentCmd(a *app) *cobra.Command {
	var days uint64

	cmd := &cobra.Command{
		Use:   "rent <id>",
		Short: "Rent a book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			sub, err := a.signingSession(cmd.Context())
			if err != nil {
				return err
			}

			receipt, err := sub.Rent(cmd.Context(), a.sess.Snapshot(), id, days)
			if err != nil {
				return err
			}

			printReceipt(cmd.OutOrStdout(), receipt)
			return nil
		},
	}
	cmd.Flags().Uint64Var(&days, "days", 1, "rental length in days (time-based contracts)")

	return cmd
}

func returnCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "return <id>",
		Short: "Return a rented book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			sub, err := a.signingSession(cmd.Context())
			if err != nil {
				return err
			}

			receipt, err := sub.Return(cmd.Context(), a.sess.Snapshot(), id)
			if err != nil {
				return err
			}

			printReceipt(cmd.OutOrStdout(), receipt)
			return nil
		},
	}
}

func listCmd(a *app) *cobra.Command {
	var (
		req       model.ListingRequest
		imagePath string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Pin a cover and metadata, then list a new book",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			image, err := os.Open(filepath.Clean(imagePath))
			if err != nil {
				return fmt.Errorf("open cover image: %w", err)
			}
			defer image.Close()

			req.Image = image
			req.ImageName = filepath.Base(imagePath)

			svc, err := a.listingService(cmd.Context())
			if err != nil {
				return err
			}

			res, err := svc.ListBook(cmd.Context(), a.sess.Snapshot(), req)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "image cid: %s\nmetadata cid: %s\ntx: %s (block %d)\n", res.ImageCid, res.MetadataCid, res.TxHash, res.BlockNumber)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Title, "title", "", "book title")
	cmd.Flags().StringVar(&req.Author, "author", "", "book author")
	cmd.Flags().StringVar(&imagePath, "image", "", "path to the cover image")
	cmd.Flags().StringVar(&req.RentEth, "rent", "", "daily rent in ETH")
	cmd.Flags().StringVar(&req.DepositEth, "deposit", "", "deposit in ETH (deposit-based contracts)")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("image")
	_ = cmd.MarkFlagRequired("rent")

	return cmd
}

func historyCmd(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show journaled submissions of the signer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.signingSession(cmd.Context()); err != nil {
				return err
			}

			if a.repo == nil {
				return errors.New("no journal database configured, set PG_HOST")
			}

			subs, err := a.repo.ListSubmissions(cmd.Context(), a.sess.Snapshot().Account, limit)
			if errors.Is(err, repository.ErrNoRows) {
				fmt.Fprintln(cmd.OutOrStdout(), "no submissions yet")
				return nil
			}
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TIME\tKIND\tBOOK\tVALUE (ETH)\tSTATUS\tTX\tREASON")
			for _, sub := range subs {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\t%s\n",
					sub.CreatedAt.Format("2006-01-02 15:04:05"),
					sub.Kind,
					sub.BookID,
					economics.FormatEther(sub.ValueWei),
					sub.Status,
					sub.TxHash,
					sub.Reason,
				)
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "how many submissions to show")

	return cmd
}

func parseID(s string) (uint64, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("book id must be a positive integer, got %q", s)
	}
	return id, nil
}

func printBooks(out io.Writer, books []model.DisplayRecord) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tAUTHOR\tRENT (ETH/DAY)\tSTATE")
	for _, book := range books {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", book.ID, book.Title, book.Author, economics.FormatEther(book.DailyRentWei), bookState(book))
	}
	w.Flush()
}

func printBook(out io.Writer, book model.DisplayRecord) {
	fmt.Fprintf(out, "#%d %s by %s\n", book.ID, book.Title, book.Author)
	fmt.Fprintf(out, "  rent:    %s ETH/day\n", economics.FormatEther(book.DailyRentWei))
	if book.DepositWei != nil {
		fmt.Fprintf(out, "  deposit: %s ETH\n", economics.FormatEther(book.DepositWei))
	}
	fmt.Fprintf(out, "  state:   %s\n", bookState(book))
	if book.Owner != "" {
		fmt.Fprintf(out, "  owner:   %s\n", book.Owner)
	}
	fmt.Fprintf(out, "  cover:   %s\n", book.ImageURI)

	if book.Status == nil {
		return
	}

	switch book.Status.Model {
	case model.TimeBased:
		if book.Status.IsPenalty {
			fmt.Fprintf(out, "  overdue: %d days, penalty %s ETH\n", book.Status.TimeRemainingDays, economics.FormatEther(book.Status.PenaltyDueWei))
		} else {
			fmt.Fprintf(out, "  due in:  %d days\n", book.Status.TimeRemainingDays)
		}
		fmt.Fprintf(out, "  refund:  %s ETH\n", economics.FormatEther(book.Status.RefundDueWei))
	case model.DepositBased:
		fmt.Fprintf(out, "  rented:  %d days, fee %s ETH\n", book.Status.DaysRented, economics.FormatEther(book.Status.FeeDueWei))
		fmt.Fprintf(out, "  refund:  %s ETH\n", economics.FormatEther(book.Status.RefundDueWei))
	}
}

func printReceipt(out io.Writer, receipt *types.Receipt) {
	fmt.Fprintf(out, "tx %s mined in block %s, gas used %d\n", receipt.TxHash.Hex(), receipt.BlockNumber, receipt.GasUsed)
}

func bookState(book model.DisplayRecord) string {
	switch {
	case book.IsRentedByViewer:
		return "rented by you"
	case book.IsAvailable:
		return "available"
	default:
		return "rented"
	}
}
