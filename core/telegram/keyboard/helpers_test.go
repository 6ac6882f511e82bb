package keyboard

import "testing"

func TestReplyButtonsLayout(t *testing.T) {
	markup := ReplyButtons(
		[]string{"Один", "Два"},
		[]string{"Три"},
	)
	if !markup.ResizeKeyboard {
		t.Fatal("reply keyboard must resize")
	}
	rows := markup.ReplyKeyboard
	if len(rows) != 2 {
		t.Fatalf("rows = %d, expected 2", len(rows))
	}
	if len(rows[0]) != 2 || len(rows[1]) != 1 {
		t.Fatalf("row sizes = %d/%d, expected 2/1", len(rows[0]), len(rows[1]))
	}
	if rows[0][0].Text != "Один" || rows[1][0].Text != "Три" {
		t.Fatalf("labels out of order: %+v", rows)
	}
}

func TestInlineButtonsNPerRow(t *testing.T) {
	buttons := []InlineBtn{
		{Text: "a", Unique: "u1"},
		{Text: "b", Unique: "u2"},
		{Text: "c", Unique: "u3"},
	}
	markup := InlineButtonsNPerRow(buttons, 2)
	if len(markup.InlineKeyboard) != 2 {
		t.Fatalf("rows = %d, expected 2", len(markup.InlineKeyboard))
	}
	if len(markup.InlineKeyboard[0]) != 2 || len(markup.InlineKeyboard[1]) != 1 {
		t.Fatalf("row sizes wrong: %+v", markup.InlineKeyboard)
	}
}
