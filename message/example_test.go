package message_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/zostay/go-lifo/message"
)

func ExampleBuffer() {
	buf := &message.Buffer{}
	buf.SetSubject("Some spam for your inbox")
	_, _ = fmt.Fprintln(buf, "Hello World!")
	_, _ = buf.Opaque().WriteTo(os.Stdout)

	// Output:
	// Subject: Some spam for your inbox
	//
	// Hello World!
}

func ExampleParse() {
	msg, err := message.Parse(strings.NewReader("Subject: =?utf-8?q?caf=C3=A9?=\n\nHi"))
	if err != nil {
		panic(err)
	}

	subject, _ := msg.GetSubject()
	fmt.Println(subject)

	// Output:
	// café
}
