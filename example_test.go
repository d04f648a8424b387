package mdalerts_test

import (
	"context"
	"fmt"
	"log"

	mdalerts "github.com/jquenard/go-mdalerts"
)

func ExampleTransformer_TransformHTML() {
	t, err := mdalerts.NewTransformer()
	if err != nil {
		log.Fatal(err)
	}

	out, err := t.TransformHTML(context.Background(),
		"<blockquote><p>[!TIP] stay hydrated</p></blockquote>")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(out)
	// Output: <div class="alert is-success"><p class="alert-title"><i class="icon icon-leaf"></i>Tip</p><p>stay hydrated</p></div>
}

func ExampleTransformer_TransformDocument() {
	t, err := mdalerts.NewTransformer()
	if err != nil {
		log.Fatal(err)
	}

	doc, err := t.TransformDocument(context.Background(), mdalerts.Document{
		Title:   "Release notes",
		Content: "<blockquote><p>[!WARNING] breaking change ahead</p></blockquote>",
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(doc.Title)
	fmt.Println(doc.Content)
	// Output:
	// Release notes
	// <div class="alert is-warning"><p class="alert-title"><i class="icon icon-warning"></i>Warning</p><p>breaking change ahead</p></div>
}
