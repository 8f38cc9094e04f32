package telegram

const historyLimit = 10

const (
	internalErrMsg      string = "что-то пошло не так..."
	booksNotFound       string = "в каталоге пока нет книг..."
	bookNotFound        string = "такой книги нет в каталоге"
	chainUnreachableMsg string = "блокчейн сейчас недоступен, попробуйте позже"
	staleSessionMsg     string = "кошелек был изменен во время загрузки, повторите запрос"
	invalidAccountMsg   string = "это не похоже на адрес кошелька. Пример: /link 0xAbCd...1234"
	accountLinkedMsg    string = "кошелек успешно привязан: %s"
	accountUnlinkedMsg  string = "кошелек отвязан"
	historyEmptyMsg     string = "по вашему кошельку еще не было транзакций"
	historyDisabledMsg  string = "история транзакций недоступна"
	startMsg            string = "Добро пожаловать! Я показываю каталог книг, которые можно арендовать за ETH. Команда /catalog откроет каталог, а /link <адрес> привяжет ваш кошелек."
	helpMsg             string = "/catalog - каталог книг\n/my - книги, которые вы арендуете\n/history - последние транзакции\n/link <адрес> - привязать кошелек\n/unlink - отвязать кошелек\n\nАренда, возврат и добавление книг делаются из кошелька, бот только показывает состояние. Если у вас есть просроченные книги - бот напомнит о них."
)
