// Package main implements bookctl, a command-line client for the
// bookserver API.
//
// Besides plain catalog queries it carries a demo command that runs
// the same queries through the three asynchronous styles the client
// package supports: callback, future (promise) and
// awaited-in-parallel.
//
// Example usage:
//
//	bookctl books
//	bookctl isbn 978-0143127741
//	bookctl author alice
//	bookctl title "c programming"
//	bookctl register u1 p1
//	bookctl login u1 p1
//	bookctl review 978-0143127741 --token TOKEN --rating 5 --comment "great"
//	bookctl unreview 978-0143127741 --token TOKEN
//	bookctl demo
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dreamware/bookshelf/internal/catalog"
	"github.com/dreamware/bookshelf/internal/client"
)

var addr string

func main() {
	root := &cobra.Command{
		Use:           "bookctl",
		Short:         "Client for the bookserver catalog API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&addr, "addr", "http://localhost:3000", "bookserver base URL")

	root.AddCommand(
		booksCmd(),
		isbnCmd(),
		authorCmd(),
		titleCmd(),
		reviewsCmd(),
		registerCmd(),
		loginCmd(),
		reviewCmd(),
		unreviewCmd(),
		demoCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// printJSON renders any value as indented JSON on stdout
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func booksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "books",
		Short: "List the whole catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			books, err := client.New(addr).AllBooks(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(books)
		},
	}
}

func isbnCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "isbn <isbn>",
		Short: "Look up one book by ISBN (dashes optional)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := client.New(addr).BookByISBN(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(book)
		},
	}
}

func authorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "author <query>",
		Short: "Search books by author substring",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			books, err := client.New(addr).BooksByAuthor(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(books)
		},
	}
}

func titleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "title <query>",
		Short: "Search books by title substring",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			books, err := client.New(addr).BooksByTitle(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(books)
		},
	}
}

func reviewsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reviews <isbn>",
		Short: "Show the reviews on one book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reviews, err := client.New(addr).Reviews(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(reviews)
		},
	}
}

func registerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "register <username> <password>",
		Short: "Create an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.New(addr).Register(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Println("User registered")
			return nil
		},
	}
}

func loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login <username> <password>",
		Short: "Obtain a token",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := client.New(addr).Login(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return printJSON(res)
		},
	}
}

func reviewCmd() *cobra.Command {
	var token, comment string
	var rating float64
	cmd := &cobra.Command{
		Use:   "review <isbn>",
		Short: "Add or replace your review on a book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var ratingPtr *float64
			if cmd.Flags().Changed("rating") {
				ratingPtr = &rating
			}
			var commentPtr *string
			if cmd.Flags().Changed("comment") {
				commentPtr = &comment
			}
			review, err := client.New(addr).PostReview(cmd.Context(), token, args[0], ratingPtr, commentPtr)
			if err != nil {
				return err
			}
			return printJSON(review)
		},
	}
	cmd.Flags().StringVar(&token, "token", "", "login token")
	cmd.Flags().Float64Var(&rating, "rating", 0, "rating value")
	cmd.Flags().StringVar(&comment, "comment", "", "review comment")
	_ = cmd.MarkFlagRequired("token")
	return cmd
}

func unreviewCmd() *cobra.Command {
	var token string
	cmd := &cobra.Command{
		Use:   "unreview <isbn>",
		Short: "Delete your review from a book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.New(addr).DeleteReview(cmd.Context(), token, args[0]); err != nil {
				return err
			}
			fmt.Println("Review deleted")
			return nil
		},
	}
	cmd.Flags().StringVar(&token, "token", "", "login token")
	_ = cmd.MarkFlagRequired("token")
	return cmd
}

// demoCmd contrasts the asynchronous call styles against a running
// server: callback, future, and parallel fetches awaited through an
// errgroup
func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the async call-style demonstrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c := client.New(addr)

			// Callback style: the fetch runs in the background and
			// reports through the callback
			done := make(chan error, 1)
			c.AllBooksAsync(ctx, func(books []catalog.Book, err error) {
				if err == nil {
					fmt.Println("All books (callback):")
					err = printJSON(books)
				}
				done <- err
			})
			if err := <-done; err != nil {
				return err
			}

			// Future style: start the lookup, do other work, then wait
			future := c.BookByISBNFuture(ctx, "978-0143127741")
			book, err := future.Wait()
			if err != nil {
				return err
			}
			fmt.Println("Book by ISBN (future):")
			if err := printJSON(book); err != nil {
				return err
			}

			// Awaited in parallel: both searches in flight at once
			var byAuthor, byTitle []catalog.Book
			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				var err error
				byAuthor, err = c.BooksByAuthor(gctx, "Alice")
				return err
			})
			g.Go(func() error {
				var err error
				byTitle, err = c.BooksByTitle(gctx, "C Programming")
				return err
			})
			if err := g.Wait(); err != nil {
				return err
			}
			fmt.Println("Books by author (awaited):")
			if err := printJSON(byAuthor); err != nil {
				return err
			}
			fmt.Println("Books by title (awaited):")
			return printJSON(byTitle)
		},
	}
}
